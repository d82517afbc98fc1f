/*
Package tree builds a tree of components mirroring a markup tree. Every
component carries aggregated direction signals, which the renderer uses to
decide on the direction of elements.

The tree is built bottom-up. For text nodes, the number of LTR and RTL
phrases is counted. For elements, the number of direct children preferring
LTR or RTL is counted; grandchildren vote only through their parent.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tree

import (
	"fmt"

	"github.com/npillmayer/dirfix"
	"github.com/npillmayer/dirfix/markup"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Kind is the variant of a component.
type Kind int8

// Component kinds
const (
	Text    Kind = iota // plain text, split into phrases
	Void                // element which cannot have content, like <br>
	Element             // generic element
	Opaque              // passed through verbatim (script, comments, …)
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Void:
		return "void"
	case Element:
		return "element"
	}
	return "opaque"
}

// Component is a node of the component tree.
type Component struct {
	Kind            Kind
	Tag             string             // lower-case tag name, for Void and Element
	Attrs           []markup.Attribute // attributes, for Void and Element
	Markup          string             // serialized content, for Opaque
	Phrases         []dirfix.Phrase    // for Text
	Children        []*Component       // for Element
	LTRCount        int                // number of LTR phrases or children
	RTLCount        int                // number of RTL phrases or children
	MultipleWords   bool
	ContainsNeutral bool
	LeadingSpace    bool // text starts with whitespace
	TrailingSpace   bool // text ends with whitespace
	start, end      dirfix.Direction
}

// Direction returns the direction of a component if all of its strongly
// directed content agrees, i.e. the first and the last strong direction are
// identical and no content of the opposite direction occurs in between.
// Otherwise Neutral is returned.
func (c *Component) Direction() dirfix.Direction {
	if c == nil || c.start != c.end {
		return dirfix.Neutral
	}
	if c.LTRCount > 0 && c.RTLCount > 0 {
		return dirfix.Neutral
	}
	return c.start
}

// PreferredDirection returns Direction() if set, otherwise the majority of
// LTR and RTL content. On a tie, Neutral is returned and the direction is
// left to the parent.
func (c *Component) PreferredDirection() dirfix.Direction {
	if c == nil {
		return dirfix.Neutral
	}
	if dir := c.Direction(); dir != dirfix.Neutral {
		return dir
	}
	switch {
	case c.LTRCount > c.RTLCount:
		return dirfix.LTR
	case c.RTLCount > c.LTRCount:
		return dirfix.RTL
	}
	return dirfix.Neutral
}

// IsEmpty is true for a text component without any phrases.
func (c *Component) IsEmpty() bool {
	return c.Kind == Text && len(c.Phrases) == 0
}

// count registers the direction of a phrase or child.
func (c *Component) count(dir dirfix.Direction) {
	switch dir {
	case dirfix.LTR:
		c.LTRCount++
	case dirfix.RTL:
		c.RTLCount++
	default:
		return
	}
	if c.start == dirfix.Neutral {
		c.start = dir
	}
	c.end = dir
}

// Simple stringer for debugging purposes.
func (c *Component) String() string {
	if c == nil {
		return "<nil>"
	}
	switch c.Kind {
	case Text:
		return fmt.Sprintf("text(%d phrases, ltr=%d, rtl=%d)", len(c.Phrases), c.LTRCount, c.RTLCount)
	case Opaque:
		return "opaque"
	}
	return fmt.Sprintf("%s <%s>(ltr=%d, rtl=%d, pref=%q)", c.Kind, c.Tag, c.LTRCount, c.RTLCount,
		c.PreferredDirection())
}
