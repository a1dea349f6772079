package vars

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/byte4ever/ryuji/value"
)

// ErrUnsupportedFormat is returned for variable files that are
// neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported variables file format")

// LoadFile reads a JSON (.json) or YAML (.yaml, .yml) file
// whose top level is a mapping. YAML streams may hold
// several documents; later documents override earlier keys.
func LoadFile(path string) (value.Vars, error) {
	const errCtx = "loading variables file"

	fi, err := os.Open(path) //nolint:gosec // paths from CLI flags
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	defer fi.Close() //nolint:errcheck // read-only file

	var docs []map[string]interface{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		docs, err = decodeJSON(fi)
	case ".yaml", ".yml":
		docs, err = decodeAllYAML(fi)
	default:
		return nil, fmt.Errorf(
			"%s: %s: %w", errCtx, path, ErrUnsupportedFormat,
		)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", errCtx, path, err)
	}

	out := make(value.Vars)

	for _, doc := range docs {
		decoded, err := value.VarsFromMap(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", errCtx, path, err)
		}

		Merge(out, decoded)
	}

	return out, nil
}

// LoadFiles loads every file in order and merges the results.
func LoadFiles(paths []string) (value.Vars, error) {
	out := make(value.Vars)

	for _, pa := range paths {
		loaded, err := LoadFile(pa)
		if err != nil {
			return nil, err
		}

		Merge(out, loaded)
	}

	return out, nil
}

// Merge copies every top-level entry of src into dst.
func Merge(dst value.Vars, src value.Vars) {
	for key, val := range src {
		dst[key] = val
	}
}

func decodeJSON(in io.Reader) ([]map[string]interface{}, error) {
	const errCtx = "decoding json"

	decoder := json.NewDecoder(in)
	decoder.UseNumber()

	var doc map[string]interface{}

	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return []map[string]interface{}{doc}, nil
}

// decodeAllYAML decodes all YAML documents of a stream
// into a slice of maps, skipping empty documents.
func decodeAllYAML(in io.Reader) ([]map[string]interface{}, error) {
	const errCtx = "decoding yaml"

	decoder := yaml.NewDecoder(in)

	var docs []map[string]interface{}

	for {
		var doc map[string]interface{}

		err := decoder.Decode(&doc)
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		if doc == nil {
			continue
		}

		docs = append(docs, doc)
	}

	return docs, nil
}
