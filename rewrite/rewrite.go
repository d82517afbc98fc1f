/*
Package rewrite fixes the text direction of HTML fragments.

	out, err := rewrite.HTML("سلام hello amazing world دنیا", dirfix.RTL)
	// out == `سلام <span dir="ltr">hello amazing world</span> دنیا`

The input is decoded, parsed, analysed and rendered again, with
<span dir="…"> wrappers and dir attributes inserted wherever the direction
of a run of text conflicts with its surroundings. The ambient direction is
the direction of the container the output will be shown in.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rewrite

import (
	"strings"

	"github.com/npillmayer/dirfix"
	"github.com/npillmayer/dirfix/markup"
	"github.com/npillmayer/dirfix/render"
	"github.com/npillmayer/dirfix/tree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// HTML rewrites an HTML fragment for a container of direction ambient.
// ambient may be dirfix.Neutral if the container's direction is unknown.
//
// Errors originate from parsing (wrapping markup.ErrParse or
// markup.ErrNoBody) or from excessive nesting (tree.ErrTooDeep).
func HTML(input string, ambient dirfix.Direction, opts ...Option) (string, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	decoded := markup.Decode(input, cfg.decode)
	var root markup.Node
	var err error
	if cfg.fileMode {
		root, err = markup.ParseDocument(decoded)
	} else {
		root, err = markup.ParseFragment(strings.TrimSpace(decoded))
	}
	if err != nil {
		return "", err
	}
	c, err := tree.Build(root, cfg.tree)
	if err != nil {
		return "", err
	}
	out := render.Root(c, ambient)
	tracer().P("dir", ambient.String()).Debugf("rewrote %d bytes to %d bytes", len(input), len(out))
	return out, nil
}
