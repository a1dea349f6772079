// Binary ryuji renders a named template with variables taken
// from JSON/YAML files, stamp info files and NAME=VALUE flags.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/byte4ever/ryuji/templating"
	"github.com/byte4ever/ryuji/value"
	"github.com/byte4ever/ryuji/vars"
)

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(val string) error {
	*af = append(*af, val)
	return nil
}

func run() error {
	const errCtx = "ryuji"

	var (
		varsFiles      arrayFlags
		stampInfoFiles arrayFlags
		variables      arrayFlags
		imports        arrayFlags
	)

	var (
		templatesDir  string
		componentsDir string
		extension     string
		tpl           string
		output        string
		maxSteps      int
		executable    bool
		debug         bool
	)

	flag.StringVar(
		&templatesDir, "templates_dir", "templates",
		"Directory holding templates",
	)

	flag.StringVar(
		&componentsDir, "components_dir", "components",
		"Component directory, relative to templates_dir",
	)

	flag.StringVar(
		&extension, "extension", ".html",
		"Extension appended to names without one",
	)

	flag.StringVar(
		&tpl, "template", "",
		"Logical name of the template to render",
	)

	flag.Var(
		&varsFiles, "vars_file",
		"JSON or YAML variables file (repeatable)",
	)

	flag.Var(
		&stampInfoFiles, "stamp_info_file",
		"Stamp info file path (repeatable)",
	)

	flag.Var(
		&variables, "variable",
		"Variable in NAME=VALUE format (repeatable)",
	)

	flag.Var(
		&imports, "imports",
		"Import in NAME=filename format (repeatable)",
	)

	flag.StringVar(
		&output, "output", "",
		"Output file path (stdout if empty)",
	)

	flag.BoolVar(
		&executable, "executable", false,
		"Set executable bit on output file",
	)

	flag.IntVar(
		&maxSteps, "max_steps", 0,
		"Abort after this many directive steps (0 disables)",
	)

	flag.BoolVar(
		&debug, "debug", false,
		"Log component expansion",
	)

	flag.Parse()

	if debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if tpl == "" {
		return fmt.Errorf("%s: --template is required", errCtx)
	}

	ext, err := templating.NewFileExtension(extension)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	ctx, err := loadVars(varsFiles, stampInfoFiles, variables, imports)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	re := templating.New(templatesDir, componentsDir, ext)
	re.MaxSteps = maxSteps

	result, err := re.RenderNamed(tpl, ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if output != "" {
		var perm os.FileMode = 0o666
		if executable {
			perm = 0o777
		}

		err = os.WriteFile( //nolint:gosec // path from CLI flag
			output, []byte(result), perm,
		)
		if err != nil {
			return fmt.Errorf(
				"%s: writing output: %w",
				errCtx, err,
			)
		}

		return nil
	}

	if _, err := os.Stdout.WriteString(result); err != nil {
		return fmt.Errorf(
			"%s: writing to stdout: %w",
			errCtx, err,
		)
	}

	return nil
}

// loadVars builds the render context. Stamps form the base;
// variables files, explicit variables and then imports
// override them.
func loadVars(
	varsFiles []string,
	stampInfoFiles []string,
	variables []string,
	imports []string,
) (value.Vars, error) {
	stamps, err := vars.LoadStamps(stampInfoFiles)
	if err != nil {
		return nil, err
	}

	files, err := vars.LoadFiles(varsFiles)
	if err != nil {
		return nil, err
	}

	assigned, err := vars.ParseAssignments(variables, stamps)
	if err != nil {
		return nil, err
	}

	imported, err := vars.ParseImports(imports, stamps)
	if err != nil {
		return nil, err
	}

	ctx := make(value.Vars, len(stamps)+len(files)+len(assigned)+1)
	vars.Merge(ctx, stamps)
	vars.Merge(ctx, files)
	vars.Merge(ctx, assigned)
	vars.Merge(ctx, imported)

	return ctx, nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
