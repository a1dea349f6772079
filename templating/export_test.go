package templating

var (
	ConcatPath    = concatPath
	Sanitize      = sanitize
	Indentation   = indentation
	Reindent      = reindent
	WithExtension = withExtension
)
