package vars

import (
	"fmt"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/byte4ever/ryuji/value"
)

// VariablesKey names the map that also receives every
// assignment, so templates can write [[ variables.NAME ]].
const VariablesKey = "variables"

// ParseAssignments processes NAME=VALUE pairs. Each VALUE
// is expanded against stamps using single-brace tags, with
// unknown tags left in place, then stored as text under
// both NAME and variables.NAME.
func ParseAssignments(
	assignments []string,
	stamps value.Vars,
) (value.Vars, error) {
	const errCtx = "parsing assignments"

	tags := stampTags(stamps)

	out := make(value.Vars, len(assignments)+1)
	named := make(map[string]value.Value, len(assignments))

	for _, as := range assignments {
		name, raw, ok := strings.Cut(as, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf(
				"%s: variable must be NAME=VALUE, got %s",
				errCtx, as,
			)
		}

		val := value.Text(
			fasttemplate.ExecuteStringStd(raw, "{", "}", tags),
		)

		out[name] = val
		named[name] = val
	}

	if len(named) > 0 {
		out[VariablesKey] = value.Map(named)
	}

	return out, nil
}

// stampTags converts stamps to the tag map fasttemplate expects.
func stampTags(stamps value.Vars) map[string]interface{} {
	tags := make(map[string]interface{}, len(stamps))
	for key, val := range stamps {
		tags[key] = val.String()
	}

	return tags
}
