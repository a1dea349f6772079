package templating

import (
	"fmt"
	"strings"

	"github.com/byte4ever/ryuji/value"
)

// CheckVarName rejects names containing anything other than ASCII
// letters, digits, '_' and '/', plus '.' when dotAllowed is set.
func CheckVarName(name string, dotAllowed bool) error {
	for idx := 0; idx < len(name); idx++ {
		ch := name[idx]

		switch {
		case ch >= 'a' && ch <= 'z',
			ch >= 'A' && ch <= 'Z',
			ch >= '0' && ch <= '9',
			ch == '_', ch == '/':
			continue
		case ch == '.' && dotAllowed:
			continue
		}

		return fmt.Errorf("%w: '%s'", ErrIllegalVarName, name)
	}

	return nil
}

// Lookup resolves a dotted path such as "post.author.name" against vars,
// descending through map values. It never modifies vars.
func Lookup(vars value.Vars, path string) (value.Value, error) {
	if err := CheckVarName(path, true); err != nil {
		return value.Value{}, err
	}

	parts := strings.Split(path, ".")

	val, ok := vars[parts[0]]
	if !ok {
		return value.Value{}, fmt.Errorf("%w: '%s'", ErrVarNotFound, path)
	}

	for _, part := range parts[1:] {
		entries, isMap := val.AsMap()
		if !isMap {
			return value.Value{}, fmt.Errorf("%w: '%s'", ErrVarNotFound, path)
		}

		val, ok = entries[part]
		if !ok {
			return value.Value{}, fmt.Errorf("%w: '%s'", ErrVarNotFound, path)
		}
	}

	return val, nil
}
