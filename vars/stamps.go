package vars

import (
	"fmt"
	"os"
	"strings"

	"github.com/byte4ever/ryuji/value"
)

// LoadStamps reads workspace status files and merges them
// into a single mapping of text values. Each line is
// "KEY VALUE" with the first space as delimiter. Lines
// without a space are silently skipped; later files
// override earlier ones.
func LoadStamps(infoFiles []string) (value.Vars, error) {
	const errCtx = "loading stamps"

	stamps := make(value.Vars)

	for _, sf := range infoFiles {
		content, err := os.ReadFile(sf) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		for _, line := range strings.Split(string(content), "\n") {
			key, val, ok := strings.Cut(line, " ")
			if ok {
				stamps[key] = value.Text(val)
			}
		}
	}

	return stamps, nil
}
