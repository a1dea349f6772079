package templating

import (
	"fmt"
	"slices"
	"strings"

	"github.com/byte4ever/ryuji/scanner"
	"github.com/byte4ever/ryuji/value"
)

// loopContext tracks one open for directive.
type loopContext struct {
	token     int
	current   int
	items     []value.Value
	itemName  string
	indexName string
}

// interpreter walks the token list of one template with a cursor. Block
// skips and loop repeats move the cursor; only components recurse.
type interpreter struct {
	re     *Renderer
	text   string
	tokens []scanner.Token
	vars   value.Vars
	depth  int

	loops     []loopContext
	blockEnds map[int]int

	out    strings.Builder
	cursor int
	steps  int
	warned bool
}

func (in *interpreter) run() (string, error) {
	in.out.WriteString(in.text[:in.tokens[0].Offset])

	for in.cursor < len(in.tokens) {
		tk := in.tokens[in.cursor]

		next, err := in.dispatch(tk)
		if err != nil {
			return "", &DirectiveError{
				Offset:    tk.Offset,
				Directive: tk.Content,
				Err:       err,
			}
		}

		in.cursor = next
	}

	if len(in.loops) > 0 {
		tk := in.tokens[in.loops[len(in.loops)-1].token]

		return "", &DirectiveError{
			Offset:    tk.Offset,
			Directive: tk.Content,
			Err:       ErrMissingEndFor,
		}
	}

	return in.out.String(), nil
}

func (in *interpreter) dispatch(tk scanner.Token) (int, error) {
	if err := in.count(); err != nil {
		return 0, err
	}

	parts := strings.Split(tk.Body(), ":")

	switch parts[0] {
	case "component":
		return in.component(parts)
	case "for":
		return in.forLoop(parts)
	case "endfor":
		return in.endFor(parts)
	case "if":
		return in.ifBlock(parts)
	case "endif":
		if len(parts) != 1 {
			return 0, badArgument("`endif` takes no arguments")
		}

		return in.advance(), nil
	case "html":
		if len(parts) != 2 {
			return 0, badArgument(
				"`html:` statement missing variable name, the second arg, or has more than two args",
			)
		}

		return in.output(parts[1], false)
	}

	if len(parts) != 1 {
		return 0, badArgument("unknown statement `%s:`", parts[0])
	}

	return in.output(parts[0], true)
}

func (in *interpreter) count() error {
	in.steps++

	if limit := in.re.MaxSteps; limit > 0 && in.steps > limit {
		return fmt.Errorf("%w (%d)", ErrStepLimit, limit)
	}

	if warn := in.re.warnSteps(); warn > 0 && in.steps > warn && !in.warned {
		in.warned = true
		in.re.logger().Warn(
			"render passed step threshold, infinite loop?",
			"steps", warn,
			"depth", in.depth,
		)
	}

	return nil
}

func (in *interpreter) component(parts []string) (int, error) {
	if in.depth > MaxComponentDepth {
		return 0, ErrRecursionTooDeep
	}

	if len(parts) != 2 {
		return 0, badArgument(
			"`component:` statement missing component name (second arg), or more than two args",
		)
	}

	name := concatPath(
		in.re.ComponentsDir,
		withExtension(parts[1], in.re.Extension),
	)

	in.re.logger().Debug(
		"rendering component",
		"component", name,
		"depth", in.depth+1,
	)

	rendered, err := in.re.RenderNamedDepth(name, in.vars, in.depth+1)
	if err != nil {
		return 0, err
	}

	in.out.WriteString(rendered)

	return in.advance(), nil
}

// forLoop opens a loop on its first visit. When endfor jumps back to an
// already active loop it only moves on.
func (in *interpreter) forLoop(parts []string) (int, error) {
	if top := len(in.loops) - 1; top >= 0 && in.loops[top].token == in.cursor {
		return in.advance(), nil
	}

	if len(parts) < 2 {
		return 0, badArgument(
			"`for:` statement missing variable name to loop over (second arg)",
		)
	}

	if len(parts) > 5 {
		return 0, badArgument("`for:` statement cannot have more than 5 args")
	}

	end, ok := in.blockEnd("for", "endfor")
	if !ok {
		return 0, ErrMissingEndFor
	}

	val, err := Lookup(in.vars, parts[1])
	if err != nil {
		return 0, err
	}

	items, ok := val.AsList()
	if !ok {
		return 0, badArgument(
			"variable '%s' looped over in `for:` statement is not a list",
			parts[1],
		)
	}

	for _, name := range parts[2:] {
		if err := CheckVarName(name, false); err != nil {
			return 0, err
		}
	}

	if len(items) == 0 {
		return in.resumeAfter(end), nil
	}

	loop := loopContext{
		token: in.cursor,
		items: slices.Clone(items),
	}

	if len(parts) >= 3 && parts[2] != "" {
		loop.itemName = parts[2]
		in.vars[loop.itemName] = loop.items[0]
	}

	if len(parts) >= 4 && parts[3] != "" {
		loop.indexName = parts[3]
		in.vars[loop.indexName] = value.Uint(0)
	}

	if len(parts) == 5 && parts[4] != "" {
		in.vars[parts[4]] = value.Uint(uint64(len(items) - 1))
	}

	in.loops = append(in.loops, loop)

	return in.advance(), nil
}

func (in *interpreter) endFor(parts []string) (int, error) {
	if len(parts) != 1 {
		return 0, badArgument("`endfor` takes no arguments")
	}

	if len(in.loops) == 0 {
		return 0, badArgument("`endfor` without an open `for:` statement")
	}

	loop := &in.loops[len(in.loops)-1]

	loop.current++
	if loop.current >= len(loop.items) {
		in.loops = in.loops[:len(in.loops)-1]

		return in.advance(), nil
	}

	if loop.itemName != "" {
		in.vars[loop.itemName] = loop.items[loop.current]
	}

	if loop.indexName != "" {
		in.vars[loop.indexName] = value.Uint(uint64(loop.current))
	}

	return loop.token, nil
}

func (in *interpreter) ifBlock(parts []string) (int, error) {
	if len(parts) < 2 {
		return 0, badArgument("`if:` statement missing variable name (second arg)")
	}

	if len(parts) > 3 {
		return 0, badArgument("`if:` statement cannot have more than 3 args")
	}

	end, ok := in.blockEnd("if", "endif")
	if !ok {
		return 0, ErrMissingEndIf
	}

	first, err := Lookup(in.vars, parts[1])
	if err != nil {
		return 0, err
	}

	pass := first.Truthy()

	if len(parts) == 3 {
		name, negate := strings.CutPrefix(parts[2], "!")

		second, err := Lookup(in.vars, name)
		if err != nil {
			return 0, err
		}

		pass = first.Equal(second) != negate
	}

	if !pass {
		return in.resumeAfter(end), nil
	}

	return in.advance(), nil
}

func (in *interpreter) output(name string, escape bool) (int, error) {
	val, err := Lookup(in.vars, name)
	if err != nil {
		return 0, err
	}

	text := reindent(val.String(), indentation(in.out.String()))
	if escape {
		text = sanitize(text)
	}

	in.out.WriteString(text)

	return in.advance(), nil
}

// blockEnd finds the token closing the block opened at the cursor,
// skipping nested blocks of the same kind. Only a body starting
// with "open:" opens a block and only a body equal to closing
// ends one.
func (in *interpreter) blockEnd(open string, closing string) (int, bool) {
	if end, ok := in.blockEnds[in.cursor]; ok {
		return end, true
	}

	nested := 0
	opener := open + ":"

	for idx := in.cursor + 1; idx < len(in.tokens); idx++ {
		body := in.tokens[idx].Body()

		switch {
		case strings.HasPrefix(body, opener):
			nested++
		case body == closing:
			if nested == 0 {
				in.blockEnds[in.cursor] = idx

				return idx, true
			}

			nested--
		}
	}

	return 0, false
}

func (in *interpreter) advance() int {
	return in.resumeAfter(in.cursor)
}

// resumeAfter copies the literal text following token idx and returns the
// index of the next token.
func (in *interpreter) resumeAfter(idx int) int {
	tail := len(in.text)
	if idx+1 < len(in.tokens) {
		tail = in.tokens[idx+1].Offset
	}

	in.out.WriteString(in.text[in.tokens[idx].End():tail])

	return idx + 1
}
