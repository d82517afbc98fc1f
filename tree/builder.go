package tree

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/dirfix/charclass"
	"github.com/npillmayer/dirfix/markup"
	"github.com/npillmayer/dirfix/phrase"
)

// ErrTooDeep is returned for markup nested deeper than the configured
// maximum depth.
var ErrTooDeep = errors.New("tree: markup nested too deeply")

// DefaultMaxDepth is the nesting limit if none is configured.
const DefaultMaxDepth = 512

// DefaultVoidTags lists the elements which never have content.
var DefaultVoidTags = []string{
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "param", "source", "track", "wbr",
}

// Config configures a Builder.
type Config struct {
	VoidTags   []string // additional void tags, added to DefaultVoidTags
	TrimSpaces bool     // collapse runs of whitespace within text
	MaxDepth   int      // maximum nesting depth; 0 means DefaultMaxDepth
}

// Builder builds component trees from markup trees.
type Builder struct {
	void       map[string]bool
	trimSpaces bool
	maxDepth   int
}

// NewBuilder creates a builder for a configuration.
func NewBuilder(config Config) *Builder {
	b := &Builder{
		void:       make(map[string]bool, len(DefaultVoidTags)+len(config.VoidTags)),
		trimSpaces: config.TrimSpaces,
		maxDepth:   config.MaxDepth,
	}
	if b.maxDepth <= 0 {
		b.maxDepth = DefaultMaxDepth
	}
	for _, tag := range DefaultVoidTags {
		b.void[tag] = true
	}
	for _, tag := range config.VoidTags {
		if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
			b.void[tag] = true
		}
	}
	return b
}

// Build is a shortcut for NewBuilder(config).Build(root).
func Build(root markup.Node, config Config) (*Component, error) {
	return NewBuilder(config).Build(root)
}

// IsVoidTag is true if tag is configured as a void tag.
func (b *Builder) IsVoidTag(tag string) bool {
	return b.void[strings.ToLower(tag)]
}

// Build creates a component tree for a markup tree. A nil root results in an
// empty text component.
func (b *Builder) Build(root markup.Node) (*Component, error) {
	c, err := b.build(root, 0)
	if err != nil {
		tracer().Errorf(err.Error())
		return nil, err
	}
	return c, nil
}

func (b *Builder) build(n markup.Node, depth int) (*Component, error) {
	if depth > b.maxDepth {
		return nil, fmt.Errorf("%w: depth exceeds %d", ErrTooDeep, b.maxDepth)
	}
	if n == nil {
		return &Component{Kind: Text}, nil
	}
	switch n.Type() {
	case markup.TextNode:
		return b.buildText(n.TextContent()), nil
	case markup.OpaqueNode:
		return &Component{Kind: Opaque, Tag: n.TagName(), Markup: n.Markup()}, nil
	}
	tag := strings.ToLower(n.TagName())
	if b.void[tag] {
		return &Component{Kind: Void, Tag: tag, Attrs: n.Attributes()}, nil
	}
	c := &Component{Kind: Element, Tag: tag, Attrs: n.Attributes()}
	contentCount := 0
	for _, child := range n.Children() {
		cc, err := b.build(child, depth+1)
		if err != nil {
			return nil, err
		}
		c.Children = append(c.Children, cc)
		if cc.Kind == Void || cc.Kind == Opaque || cc.IsEmpty() {
			continue
		}
		contentCount++
		c.count(cc.PreferredDirection())
		c.MultipleWords = c.MultipleWords || cc.MultipleWords
		c.ContainsNeutral = c.ContainsNeutral || cc.ContainsNeutral
	}
	if contentCount > 1 {
		c.MultipleWords = true
	}
	tracer().Debugf("built %v", c)
	return c, nil
}

func (b *Builder) buildText(text string) *Component {
	c := &Component{Kind: Text}
	if text == "" {
		return c
	}
	first, _ := utf8.DecodeRuneInString(text)
	last, _ := utf8.DecodeLastRuneInString(text)
	c.LeadingSpace = charclass.IsSpace(first)
	c.TrailingSpace = charclass.IsSpace(last)
	c.Phrases = phrase.Split(text, b.trimSpaces)
	for _, p := range c.Phrases {
		c.count(p.Dir)
		c.MultipleWords = c.MultipleWords || p.MultipleWords
		c.ContainsNeutral = c.ContainsNeutral || p.ContainsNeutral
	}
	if len(c.Phrases) > 1 {
		c.MultipleWords = true
	}
	return c
}
