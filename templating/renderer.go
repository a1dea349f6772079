package templating

import (
	"fmt"
	"log/slog"

	"github.com/byte4ever/ryuji/scanner"
	"github.com/byte4ever/ryuji/value"
)

const (
	// MaxComponentDepth is the deepest render level allowed to expand a
	// component directive.
	MaxComponentDepth = 5

	// DefaultWarnSteps is the step count after which a render logs a
	// suspected infinite loop.
	DefaultWarnSteps = 75000
)

// Renderer renders templates stored under TemplatesDir. Components live
// in ComponentsDir, which is resolved relative to TemplatesDir.
type Renderer struct {
	TemplatesDir  string
	ComponentsDir string

	// Extension is appended to logical names that contain no dot.
	Extension FileExtension

	// Loader reads template files. Nil means FileLoader.
	Loader Loader

	// Logger receives diagnostics. Nil means slog.Default().
	Logger *slog.Logger

	// MaxSteps aborts a render with ErrStepLimit once more than
	// MaxSteps directives have been dispatched. Zero disables the limit.
	MaxSteps int

	// WarnSteps is the step count that triggers the infinite loop
	// warning. Zero means DefaultWarnSteps; negative disables it.
	WarnSteps int
}

// New returns a Renderer reading files from the operating system.
func New(
	templatesDir string,
	componentsDir string,
	ext FileExtension,
) *Renderer {
	return &Renderer{
		TemplatesDir:  templatesDir,
		ComponentsDir: componentsDir,
		Extension:     ext,
	}
}

// Render renders template text at depth zero. Loop directives write their
// variables into vars, and the bindings remain after Render returns.
func (re *Renderer) Render(text string, vars value.Vars) (string, error) {
	return re.RenderDepth(text, vars, 0)
}

// RenderDepth renders template text as if it were a component nested
// depth levels deep.
func (re *Renderer) RenderDepth(
	text string,
	vars value.Vars,
	depth int,
) (string, error) {
	tokens := scanner.Scan(text)
	if len(tokens) == 0 {
		return text, nil
	}

	if vars == nil {
		vars = make(value.Vars)
	}

	in := &interpreter{
		re:        re,
		text:      text,
		tokens:    tokens,
		vars:      vars,
		depth:     max(depth, 0),
		blockEnds: make(map[int]int),
	}

	return in.run()
}

// RenderNamed loads the template with the given logical name and renders
// it at depth zero.
func (re *Renderer) RenderNamed(
	name string,
	vars value.Vars,
) (string, error) {
	return re.RenderNamedDepth(name, vars, 0)
}

// RenderNamedDepth loads TemplatesDir/name, appending Extension when name
// has none, and renders it at the given depth.
func (re *Renderer) RenderNamedDepth(
	name string,
	vars value.Vars,
	depth int,
) (string, error) {
	const errCtx = "rendering template"

	path := concatPath(re.TemplatesDir, withExtension(name, re.Extension))

	content, err := re.loader().Load(path)
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", errCtx, name, err)
	}

	out, err := re.RenderDepth(content, vars, depth)
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", errCtx, name, err)
	}

	return out, nil
}

func (re *Renderer) loader() Loader {
	if re.Loader == nil {
		return FileLoader{}
	}

	return re.Loader
}

func (re *Renderer) logger() *slog.Logger {
	if re.Logger == nil {
		return slog.Default()
	}

	return re.Logger
}

func (re *Renderer) warnSteps() int {
	if re.WarnSteps == 0 {
		return DefaultWarnSteps
	}

	return re.WarnSteps
}
