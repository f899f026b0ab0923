// Package templating renders template bodies against merge variables.
//
// Bodies use text/template syntax with a dot-less shorthand for plain
// variables: {{first_name}} is the same as {{.first_name}}. Conditionals
// and iteration use {{if}} and {{range}}. Missing variables render as
// the empty string.
package templating

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"text/template"
	"text/template/parse"
	"unicode"
)

// orEmptyFunc is appended to every printing action; it turns the nil a
// missing key yields into "".
const orEmptyFunc = "orEmpty"

var (
	bareVar  = regexp.MustCompile(`\{\{(-?\s*)([A-Za-z_][A-Za-z0-9_]*)(\s*-?)\}\}`)
	keywords = map[string]bool{
		"if": true, "range": true, "with": true, "end": true, "else": true,
		"break": true, "continue": true, "define": true, "block": true,
		"template": true, "nil": true, "true": true, "false": true,
	}
)

type Engine struct {
	funcs template.FuncMap
}

func NewEngine() *Engine {
	return &Engine{funcs: template.FuncMap{
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"title": title,
		"default": func(def, v any) any {
			if isEmpty(v) {
				return def
			}
			return v
		},
		"join":      join,
		orEmptyFunc: orEmpty,
	}}
}

// Validate reports a syntax error in text.
func (e *Engine) Validate(text string) error {
	_, err := e.parse("validate", text)
	return err
}

// Render executes text against vars.
func (e *Engine) Render(name, text string, vars map[string]any) (string, error) {
	if text == "" {
		return "", nil
	}

	tpl, err := e.parse(name, text)
	if err != nil {
		return "", err
	}
	for _, t := range tpl.Templates() {
		if t.Tree != nil {
			blankMissing(t.Tree.Root)
		}
	}

	if vars == nil {
		vars = map[string]any{}
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (e *Engine) parse(name, text string) (*template.Template, error) {
	tpl, err := template.New(name).
		Option("missingkey=zero").
		Funcs(e.funcs).
		Parse(normalize(text, e.funcs))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return tpl, nil
}

// normalize rewrites {{name}} to {{.name}} unless name is a keyword or a
// registered function.
func normalize(text string, funcs template.FuncMap) string {
	return bareVar.ReplaceAllStringFunc(text, func(m string) string {
		parts := bareVar.FindStringSubmatch(m)
		ident := parts[2]
		if keywords[ident] {
			return m
		}
		if _, ok := funcs[ident]; ok {
			return m
		}
		return "{{" + parts[1] + "." + ident + parts[3] + "}}"
	})
}

func blankMissing(list *parse.ListNode) {
	if list == nil {
		return
	}
	for _, node := range list.Nodes {
		switch n := node.(type) {
		case *parse.ActionNode:
			if len(n.Pipe.Decl) > 0 {
				continue
			}
			n.Pipe.Cmds = append(n.Pipe.Cmds, &parse.CommandNode{
				NodeType: parse.NodeCommand,
				Pos:      n.Pos,
				Args:     []parse.Node{parse.NewIdentifier(orEmptyFunc).SetPos(n.Pos)},
			})
		case *parse.IfNode:
			blankMissing(n.List)
			blankMissing(n.ElseList)
		case *parse.RangeNode:
			blankMissing(n.List)
			blankMissing(n.ElseList)
		case *parse.WithNode:
			blankMissing(n.List)
			blankMissing(n.ElseList)
		case *parse.ListNode:
			blankMissing(n)
		}
	}
}

func orEmpty(v any) any {
	if v == nil {
		return ""
	}
	return v
}

func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func join(sep string, v any) string {
	switch items := v.(type) {
	case []string:
		return strings.Join(items, sep)
	case []any:
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, fmt.Sprint(it))
		}
		return strings.Join(out, sep)
	case nil:
		return ""
	default:
		return fmt.Sprint(items)
	}
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}
