/*
Package markup is the boundary between the direction fixer and a host markup
parser. The core packages see markup only through the narrow Node interface;
this package implements it on top of golang.org/x/net/html and provides
entity decoding and escaping for the serializer side.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package markup

import (
	"errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Errors at the parser boundary.
var (
	ErrParse  = errors.New("markup: parse failed")
	ErrNoBody = errors.New("markup: document has no body element")
)

// NodeType tells text nodes from element nodes. Everything the direction
// fixer must not look into (comments, doctype declarations, script content)
// is of type OpaqueNode.
type NodeType int8

// Node types
const (
	TextNode NodeType = iota
	ElementNode
	OpaqueNode
)

func (t NodeType) String() string {
	switch t {
	case TextNode:
		return "text"
	case ElementNode:
		return "element"
	}
	return "opaque"
}

// Attribute is a name/value pair of an element. Values are unescaped.
type Attribute struct {
	Name  string
	Value string
}

// Node is a node of a parsed markup tree.
type Node interface {
	Type() NodeType
	TextContent() string     // text of a text node, empty otherwise
	TagName() string         // lower-case tag name of an element node
	Attributes() []Attribute // in document order
	Children() []Node        // in document order
	Markup() string          // serialized node, used for opaque nodes
}
