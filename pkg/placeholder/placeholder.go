package placeholder

import (
	"regexp"
	"strings"
)

// paramPattern matches a placeholder: one or more non-brace characters
// enclosed in braces. The capture group holds the identifier.
var paramPattern = regexp.MustCompile(`\{([^}]+)\}`)

// Substitute replaces every {name} whose identifier is bound in vars with the
// bound value. Unbound placeholders stay literal. Values are emitted verbatim
// and never re-scanned, so a value containing placeholder syntax survives
// substitution unchanged.
func Substitute(template string, vars map[string]string) string {
	if len(vars) == 0 || !strings.Contains(template, "{") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	i := 0
	for i < len(template) {
		open := strings.IndexByte(template[i:], '{')
		if open < 0 {
			b.WriteString(template[i:])
			break
		}
		open += i
		b.WriteString(template[i:open])

		end := strings.IndexByte(template[open+1:], '}')
		if end < 0 {
			// Unterminated brace, the rest of the template is literal.
			b.WriteString(template[open:])
			break
		}
		end += open + 1

		if name := template[open+1 : end]; name != "" {
			if value, ok := vars[name]; ok {
				b.WriteString(value)
				i = end + 1
				continue
			}
		}

		// Unbound (or empty) identifier: the brace is literal. Resume right
		// after it so an inner placeholder like the {b} in "{a{b}" is still
		// found.
		b.WriteByte('{')
		i = open + 1
	}

	return b.String()
}

// Params returns the placeholder identifiers found in text, deduplicated,
// in order of first appearance.
func Params(text string) []string {
	var params []string
	return appendParams(params, text, make(map[string]struct{}))
}

// ParamsMulti returns the union of the placeholder identifiers found in
// subject and content, deduplicated, subject first, in order of first
// appearance.
func ParamsMulti(subject, content string) []string {
	seen := make(map[string]struct{})
	var params []string
	params = appendParams(params, subject, seen)
	params = appendParams(params, content, seen)
	return params
}

func appendParams(params []string, text string, seen map[string]struct{}) []string {
	for _, m := range paramPattern.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		params = append(params, name)
	}
	return params
}
