/*
Package render serializes a component tree to markup, inserting
<span dir="…"> wrappers and dir attributes where the direction of content
differs from its surroundings.

Rendering is a single depth-first walk. An open span (see dirfix.Span) may
outlive the render call which opened it: it is handed to the next sibling
and returned to the caller, until it is either closed by content which
does not fit, or force-closed at the end of the enclosing element.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package render

import (
	"strings"

	"github.com/npillmayer/dirfix"
	"github.com/npillmayer/dirfix/markup"
	"github.com/npillmayer/dirfix/tree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Result is the outcome of rendering a component.
type Result struct {
	Text         string           // markup emitted so far
	Dir          dirfix.Direction // resolved direction of the component
	Span         *dirfix.Span     // span still open after the component, or nil
	SpacePending bool             // a separating space is owed before the next unit
}

// Block elements start on a new line, so pending spaces at their borders
// are dropped.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "li": true, "main": true, "nav": true, "ol": true,
	"p": true, "pre": true, "section": true, "table": true, "tbody": true,
	"td": true, "tfoot": true, "th": true, "thead": true, "tr": true, "ul": true,
}

// Render renders a component, continuing an open span of a previous
// sibling (outer may be nil). parentDir is the direction of the enclosing
// element; space tells if a separating space is owed.
func Render(c *tree.Component, outer *dirfix.Span, parentDir dirfix.Direction, space bool) Result {
	return render(c, outer, parentDir, space, false)
}

// Root renders the content of a root component (without the root's own
// tags) for a container of direction ambient. If the content has a
// different direction than the container, the direction is set on the
// content's single element, or the content is wrapped into a span.
func Root(c *tree.Component, ambient dirfix.Direction) string {
	if c == nil {
		return ""
	}
	dir := c.PreferredDirection()
	if dir == dirfix.Neutral {
		dir = ambient
	}
	tracer().P("dir", dir.String()).Debugf("render root, ambient = %q", ambient.String())
	if dir == ambient || dir == dirfix.Neutral {
		text, _ := content(c, dir)
		return text
	}
	if only := singleChild(c); only != nil && only.Kind == tree.Element {
		return render(only, nil, dir, false, true).Text
	}
	text, _ := content(c, dir)
	return openTag(dir) + text + "</span>"
}

func render(c *tree.Component, outer *dirfix.Span, parentDir dirfix.Direction, space, setDir bool) Result {
	if c == nil {
		return Result{Dir: parentDir, Span: outer, SpacePending: space}
	}
	switch c.Kind {
	case tree.Text:
		return renderText(c, outer, parentDir, space)
	case tree.Void:
		if c.Tag == "br" {
			space = false
		}
		return renderVoid(markup.StartTag(c.Tag, withoutDir(c.Attrs)), outer, space)
	case tree.Opaque:
		return renderVoid(c.Markup, outer, space)
	}
	return renderElement(c, outer, parentDir, space, setDir)
}

func renderText(c *tree.Component, outer *dirfix.Span, parentDir dirfix.Direction, space bool) Result {
	if len(c.Phrases) == 0 {
		return Result{Dir: parentDir, Span: outer, SpacePending: space || c.LeadingSpace}
	}
	var sb strings.Builder
	space = space || c.LeadingSpace
	for _, p := range c.Phrases {
		p.Text = markup.EscapeText(p.Text)
		if outer != nil {
			text, action := outer.Offer(p, space)
			sb.WriteString(text)
			if action == dirfix.Closed {
				outer = nil
			}
		} else if p.Dir == parentDir || p.Dir == dirfix.Neutral {
			sb.WriteString(prefix(space) + p.Text)
		} else {
			outer = dirfix.OpenSpan(p.Dir)
			sb.WriteString(prefix(space) + openTag(p.Dir) + p.Text)
		}
		space = true
	}
	return Result{Text: sb.String(), Dir: parentDir, Span: outer, SpacePending: c.TrailingSpace}
}

// renderVoid emits a tag, or queues it if a span is open. Void content
// never breaks a span.
func renderVoid(tag string, outer *dirfix.Span, space bool) Result {
	if outer == nil {
		return Result{Text: prefix(space) + tag, Dir: dirfix.Neutral}
	}
	outer.Queue(dirfix.Phrase{Text: prefix(space) + tag}, true)
	return Result{Dir: dirfix.Neutral, Span: outer}
}

func renderElement(c *tree.Component, outer *dirfix.Span, parentDir dirfix.Direction, space, setDir bool) Result {
	dir := c.PreferredDirection()
	if dir == dirfix.Neutral {
		dir = parentDir
	}
	block := blockTags[c.Tag]
	if block {
		space = false
	}
	inner, pending := content(c, dir)
	attrs := withoutDir(c.Attrs)
	if dir != dirfix.Neutral && (dir != parentDir || setDir) {
		attrs = append(attrs, markup.Attribute{Name: "dir", Value: dir.String()})
	}
	if block {
		pending = false
	}
	unit := dirfix.Phrase{
		Text:            markup.StartTag(c.Tag, attrs) + inner + markup.EndTag(c.Tag),
		Dir:             dir,
		MultipleWords:   c.MultipleWords || len(c.Children) > 1,
		ContainsNeutral: c.ContainsNeutral,
	}
	if outer != nil {
		text, action := outer.Offer(unit, space)
		if action == dirfix.Closed {
			outer = nil
		}
		return Result{Text: text, Dir: dir, Span: outer, SpacePending: pending}
	}
	return Result{Text: prefix(space) + unit.Text, Dir: dir, SpacePending: pending}
}

// content renders the children of an element in direction dir. A span
// opened by one of the children is closed at the end. It returns the
// markup and if a space is pending after the last child.
func content(c *tree.Component, dir dirfix.Direction) (string, bool) {
	var sb strings.Builder
	var span *dirfix.Span
	space := false
	for _, child := range c.Children {
		r := render(child, span, dir, space, false)
		sb.WriteString(r.Text)
		span, space = r.Span, r.SpacePending
	}
	if span != nil {
		sb.WriteString(span.Close())
	}
	return sb.String(), space
}

// singleChild returns the only non-empty child of c, or nil.
func singleChild(c *tree.Component) *tree.Component {
	var only *tree.Component
	for _, child := range c.Children {
		if child.IsEmpty() && !child.LeadingSpace {
			continue
		}
		if only != nil {
			return nil
		}
		only = child
	}
	return only
}

func withoutDir(attrs []markup.Attribute) []markup.Attribute {
	out := make([]markup.Attribute, 0, len(attrs)+1)
	for _, a := range attrs {
		if !strings.EqualFold(a.Name, "dir") {
			out = append(out, a)
		}
	}
	return out
}

func openTag(dir dirfix.Direction) string {
	return `<span dir="` + dir.String() + `">`
}

func prefix(space bool) string {
	if space {
		return " "
	}
	return ""
}
