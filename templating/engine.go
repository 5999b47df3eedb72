package templating

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"
)

// ErrUndefinedVariable is returned when a template references
// a variable that was not supplied. The wrapping error names
// the missing variable.
var ErrUndefinedVariable = errors.New(
	"undefined template variable",
)

// Engine substitutes explicit variables into templates. The
// zero value uses double-brace tags.
type Engine struct {
	StartTag string
	EndTag   string
}

// Render substitutes every marker in tpl using vars and
// returns the rendered text. Marker names are trimmed of
// surrounding whitespace, so "{{ name }}" and "{{name}}"
// refer to the same variable. A marker naming a variable
// absent from vars aborts the render with
// ErrUndefinedVariable; variables supplied but never
// referenced are ignored. Values render with their default
// fmt formatting, so non-string scalars work.
func (en *Engine) Render(
	tpl string,
	vars map[string]interface{},
) (string, error) {
	const errCtx = "rendering template"

	startTag, endTag := en.tags()

	out, err := fasttemplate.ExecuteFuncStringWithErr(
		tpl, startTag, endTag,
		func(w io.Writer, tag string) (int, error) {
			name := strings.TrimSpace(tag)

			val, ok := vars[name]
			if !ok {
				return 0, fmt.Errorf(
					"%w: %s",
					ErrUndefinedVariable, name,
				)
			}

			return fmt.Fprintf(w, "%v", val)
		},
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return out, nil
}

// tags returns the configured start/end tags, falling
// back to double-brace defaults.
func (en *Engine) tags() (string, string) {
	startTag := en.StartTag
	if startTag == "" {
		startTag = "{{"
	}

	endTag := en.EndTag
	if endTag == "" {
		endTag = "}}"
	}

	return startTag, endTag
}
