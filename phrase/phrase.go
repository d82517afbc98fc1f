/*
Package phrase splits plain text into direction-coherent phrases.

A phrase is a group of consecutive words with the same direction. Words
without a strong direction (numbers, punctuation) are collected and either
merged into the surrounding phrase, if the phrases on both sides have the
same direction, or kept as a phrase of their own.

Because neutrals get merged when surrounded, a neutral phrase can occur in
3 places only:

   1. at the beginning of the text,
   2. at a change of direction, like "ltr – neutral – rtl",
   3. at the end of the text.

Between each two LTR phrases there is exactly one RTL phrase and vice versa
(not counting neutral phrases). Two consecutive phrases never share a strong
direction and two neutral phrases are never adjacent.

Input text is expected to be decoded, i.e. not to contain any markup
entities like "&amp;".

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package phrase

import (
	"github.com/npillmayer/dirfix"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// grouper folds a sequence of words into phrases. It holds the phrase
// currently built (strong direction) and a buffer of neutral words, which
// have not yet been assigned.
type grouper struct {
	phrases     []dirfix.Phrase
	current     dirfix.Phrase
	hasCurrent  bool
	neutrals    dirfix.Phrase
	hasNeutrals bool
}

// Group merges words into phrases.
func Group(words []Word) []dirfix.Phrase {
	g := &grouper{}
	for _, w := range words {
		g.push(w)
	}
	return g.finish()
}

// Split splits a text into words and groups the words into phrases.
func Split(text string, trimSpaces bool) []dirfix.Phrase {
	return Group(Words(text, trimSpaces))
}

func (g *grouper) push(w Word) {
	if w.Dir == dirfix.Neutral {
		g.pushNeutral(w)
		return
	}
	if !g.hasCurrent { // first word with strong direction
		g.flushNeutrals()
		g.start(w)
		return
	}
	if w.Dir == g.current.Dir {
		g.current.MultipleWords = true
		g.current.ContainsNeutral = g.current.ContainsNeutral || w.ContainsNeutral
		if g.hasNeutrals { // sandwiched neutrals rejoin the phrase
			g.current.Text += " " + g.neutrals.Text
			g.current.ContainsNeutral = g.current.ContainsNeutral || g.neutrals.ContainsNeutral
			g.neutrals, g.hasNeutrals = dirfix.Phrase{}, false
		}
		g.current.Text += " " + w.Text
		return
	}
	// Direction has changed. Pending neutrals have appeared after the current
	// phrase, so the current phrase has to be flushed first.
	g.flushCurrent()
	g.flushNeutrals()
	g.start(w)
}

func (g *grouper) pushNeutral(w Word) {
	if g.hasNeutrals {
		g.neutrals.Text += " " + w.Text
		g.neutrals.MultipleWords = true
		g.neutrals.ContainsNeutral = g.neutrals.ContainsNeutral || w.ContainsNeutral
		return
	}
	g.neutrals = dirfix.Phrase{
		Text:            w.Text,
		Dir:             dirfix.Neutral,
		ContainsNeutral: w.ContainsNeutral,
	}
	g.hasNeutrals = true
}

func (g *grouper) start(w Word) {
	g.current = dirfix.Phrase{
		Text:            w.Text,
		Dir:             w.Dir,
		ContainsNeutral: w.ContainsNeutral,
	}
	g.hasCurrent = true
}

func (g *grouper) flushCurrent() {
	if g.hasCurrent {
		tracer().Debugf("phrase %v", g.current)
		g.phrases = append(g.phrases, g.current)
		g.current, g.hasCurrent = dirfix.Phrase{}, false
	}
}

func (g *grouper) flushNeutrals() {
	if g.hasNeutrals {
		tracer().Debugf("neutral phrase %v", g.neutrals)
		g.phrases = append(g.phrases, g.neutrals)
		g.neutrals, g.hasNeutrals = dirfix.Phrase{}, false
	}
}

func (g *grouper) finish() []dirfix.Phrase {
	g.flushCurrent()
	g.flushNeutrals()
	return g.phrases
}
