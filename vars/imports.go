package vars

import (
	"fmt"
	"os"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/byte4ever/ryuji/value"
)

// ImportsKey names the map holding imported file contents,
// so templates can write [[ html:imports.NAME ]].
const ImportsKey = "imports"

// ParseImports processes NAME=filename pairs. Each file is
// read, its single-brace {KEY} tags are expanded against
// stamps with unknown tags left in place, and the text is
// stored as imports.NAME.
func ParseImports(
	imports []string,
	stamps value.Vars,
) (value.Vars, error) {
	const errCtx = "resolving imports"

	tags := stampTags(stamps)
	named := make(map[string]value.Value, len(imports))

	for _, im := range imports {
		name, path, ok := strings.Cut(im, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf(
				"%s: import must be NAME=filename, got %s",
				errCtx, im,
			)
		}

		content, err := os.ReadFile(path) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf(
				"%s: reading %s: %w",
				errCtx, path, err,
			)
		}

		named[name] = value.Text(
			fasttemplate.ExecuteStringStd(string(content), "{", "}", tags),
		)
	}

	out := make(value.Vars, 1)
	if len(named) > 0 {
		out[ImportsKey] = value.Map(named)
	}

	return out, nil
}
