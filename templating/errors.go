package templating

import (
	"errors"
	"fmt"
)

// Error kinds returned by Render. Match them with errors.Is.
var (
	ErrInvalidFileExtension = errors.New("invalid file extension (must start with '.')")
	ErrIllegalVarName       = errors.New("illegal variable name")
	ErrVarNotFound          = errors.New("variable not found")
	ErrBadArgument          = errors.New("bad argument")
	ErrMissingEndFor        = errors.New("`for:` statement missing `[[ endfor ]]`")
	ErrMissingEndIf         = errors.New("`if:` statement missing `[[ endif ]]`")
	ErrRecursionTooDeep     = errors.New("`component:` statement recursion too deep (>5)")
	ErrStepLimit            = errors.New("render step limit exceeded")
)

// DirectiveError reports the directive that aborted a render.
type DirectiveError struct {
	// Offset is the byte offset of the directive in its template.
	Offset int

	// Directive is the directive source, delimiters included.
	Directive string

	Err error
}

// Error reports the directive, its offset and the cause.
func (e *DirectiveError) Error() string {
	return fmt.Sprintf(
		"directive %s at offset %d: %v",
		e.Directive, e.Offset, e.Err,
	)
}

// Unwrap returns the underlying cause so errors.Is matches
// the sentinel errors.
func (e *DirectiveError) Unwrap() error {
	return e.Err
}

func badArgument(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrBadArgument}, args...)...)
}
