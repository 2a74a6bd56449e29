package structure

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"

	"srcmetrics/src/model"
	"srcmetrics/src/util"
)

const anonymousNamespace = "(anonymous namespace)"

// Extractor finds function definitions in C and C++ sources and reports
// the extent of their bodies. The C++ grammar is used for C as well.
type Extractor struct {
	language *sitter.Language
}

// NewExtractor creates an extractor for C and C++
func NewExtractor() *Extractor {
	return &Extractor{language: cpp.GetLanguage()}
}

// Extract returns one range per function definition that has a body, in
// source order. A range runs from the opening brace of the body to its
// closing brace. Names are qualified with enclosing namespaces and classes.
func (e *Extractor) Extract(ctx context.Context, file string, content []byte) ([]model.FunctionRange, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(e.language)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		util.Debug("Syntax errors in %s; function ranges may be incomplete", file)
	}

	w := &walker{file: file, source: content}
	w.visit(root, nil)
	return w.ranges, nil
}

type walker struct {
	file   string
	source []byte
	ranges []model.FunctionRange
}

func (w *walker) visit(node *sitter.Node, scopes []string) {
	if node == nil {
		return
	}

	switch node.Type() {
	case "function_definition":
		w.function(node, scopes)
		return

	case "namespace_definition":
		name := anonymousNamespace
		if n := node.ChildByFieldName("name"); n != nil {
			name = n.Content(w.source)
		}
		w.visit(node.ChildByFieldName("body"), append(scopes, name))
		return

	case "class_specifier", "struct_specifier", "union_specifier":
		body := node.ChildByFieldName("body")
		if body == nil {
			return
		}
		if n := node.ChildByFieldName("name"); n != nil {
			scopes = append(scopes, n.Content(w.source))
		}
		w.visit(body, scopes)
		return
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		w.visit(node.NamedChild(i), scopes)
	}
}

func (w *walker) function(node *sitter.Node, scopes []string) {
	first, last := bodyBraces(node.ChildByFieldName("body"))
	if first == nil || last == nil {
		return
	}

	name := declaratorName(node.ChildByFieldName("declarator"), w.source)
	if name == "" {
		util.Debug("Skipping unnamed function at %s:%d", w.file, node.StartPoint().Row+1)
		return
	}

	start, end := first.StartPoint(), last.EndPoint()
	w.ranges = append(w.ranges, model.FunctionRange{
		Name: qualify(scopes, name),
		Start: model.Position{
			File:   w.file,
			Offset: int(first.StartByte()),
			Line:   int(start.Row) + 1,
			Column: int(start.Column) + 1,
		},
		End: model.Position{
			File:   w.file,
			Offset: int(last.EndByte()) - 1,
			Line:   int(end.Row) + 1,
			Column: int(end.Column),
		},
	})
}

// bodyBraces returns the nodes whose first and last bytes are the opening
// and closing braces of a function body. A function-try-block opens with
// the try block and closes with its last handler.
func bodyBraces(body *sitter.Node) (first, last *sitter.Node) {
	if body == nil {
		return nil, nil
	}

	switch body.Type() {
	case "compound_statement":
		return body, body
	case "try_statement":
		block := body.ChildByFieldName("body")
		if block == nil || body.NamedChildCount() == 0 {
			return nil, nil
		}
		handler := body.NamedChild(int(body.NamedChildCount()) - 1)
		if handler == nil || handler.Type() != "catch_clause" {
			return nil, nil
		}
		return block, handler
	}
	return nil, nil
}

// declaratorName unwraps pointer, reference, array and parenthesized
// declarators down to the function declarator and returns the text of its
// name.
func declaratorName(decl *sitter.Node, source []byte) string {
	for decl != nil {
		if decl.Type() == "function_declarator" {
			n := decl.ChildByFieldName("declarator")
			if n == nil {
				return ""
			}
			// A function returning a function pointer nests its own
			// declarator inside the outer one.
			if !wrapperDeclarators[n.Type()] {
				return strings.Join(strings.Fields(n.Content(source)), " ")
			}
			decl = n
			continue
		}
		next := decl.ChildByFieldName("declarator")
		if next == nil && decl.NamedChildCount() > 0 {
			next = decl.NamedChild(0)
		}
		decl = next
	}
	return ""
}

var wrapperDeclarators = map[string]bool{
	"function_declarator":      true,
	"parenthesized_declarator": true,
	"pointer_declarator":       true,
	"reference_declarator":     true,
	"array_declarator":         true,
}

func qualify(scopes []string, name string) string {
	if len(scopes) == 0 {
		return name
	}
	return strings.Join(scopes, "::") + "::" + name
}
