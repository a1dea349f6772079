//go:build !nomapjson

package value

import (
	json "github.com/goccy/go-json"
)

// mapText serialises a map value as JSON with sorted keys. HTML is not
// escaped; bare variable directives escape angle brackets themselves.
func mapText(v Value) string {
	by, err := json.MarshalWithOption(v.Interface(), json.DisableHTMLEscape())
	if err != nil {
		return "map rendering failed: " + err.Error()
	}

	return string(by)
}
