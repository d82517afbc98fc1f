package markup

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// opaqueTags are elements whose content is never analysed for direction.
var opaqueTags = map[string]bool{
	"script":   true,
	"style":    true,
	"template": true,
	"textarea": true,
}

// IsOpaqueTag is true for elements which are passed through verbatim.
func IsOpaqueTag(tag string) bool {
	return opaqueTags[strings.ToLower(tag)]
}

// htmlNode adapts a node of golang.org/x/net/html to interface Node.
type htmlNode struct {
	n *html.Node
}

// Wrap makes an x/net/html node available as a Node. A nil input results in
// a nil Node.
func Wrap(n *html.Node) Node {
	if n == nil {
		return nil
	}
	return htmlNode{n: n}
}

func (h htmlNode) Type() NodeType {
	switch h.n.Type {
	case html.TextNode:
		return TextNode
	case html.ElementNode:
		if h.n.Namespace == "" && opaqueTags[h.n.Data] {
			return OpaqueNode
		}
		return ElementNode
	case html.DocumentNode:
		return ElementNode
	}
	return OpaqueNode
}

func (h htmlNode) TextContent() string {
	if h.n.Type != html.TextNode {
		return ""
	}
	return h.n.Data
}

func (h htmlNode) TagName() string {
	if h.n.Type != html.ElementNode {
		return ""
	}
	return h.n.Data
}

func (h htmlNode) Attributes() []Attribute {
	if len(h.n.Attr) == 0 {
		return nil
	}
	attrs := make([]Attribute, len(h.n.Attr))
	for i, a := range h.n.Attr {
		name := a.Key
		if a.Namespace != "" {
			name = a.Namespace + ":" + a.Key
		}
		attrs[i] = Attribute{Name: name, Value: a.Val}
	}
	return attrs
}

func (h htmlNode) Children() []Node {
	var children []Node
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, htmlNode{n: c})
	}
	return children
}

func (h htmlNode) Markup() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, h.n); err != nil {
		tracer().Errorf("cannot render %s node: %v", h.Type(), err)
		return ""
	}
	return buf.String()
}

// ParseFragment parses a markup fragment as the content of a synthetic
// <div> element and returns that element.
func ParseFragment(input string) (Node, error) {
	root := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(strings.NewReader(input), root)
	if err != nil {
		tracer().Errorf("parsing fragment: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	tracer().Debugf("parsed fragment into %d top-level nodes", len(nodes))
	return Wrap(root), nil
}

// ParseDocument parses a complete document and returns its body element.
// Content of the head is dropped.
func ParseDocument(input string) (Node, error) {
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		tracer().Errorf("parsing document: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	body := findBody(doc)
	if body == nil {
		return nil, ErrNoBody
	}
	return Wrap(body), nil
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}
