/*
Package dirfix is about keeping the visual direction of mixed-direction text
correct when markup is embedded into a container of a given base direction.

Description

Text which mixes left-to-right scripts (Latin, Cyrillic, CJK, …) with
right-to-left scripts (Hebrew, Arabic, …) will be displayed in a surprising
order as soon as a run of text does not agree with the direction of its
container. Browsers apply the Unicode Bidirectional Algorithm (UAX#9) to
such text, but the outcome for short runs of opposite-direction words,
punctuation and digits often is not what authors intended.

dirfix rewrites a markup fragment by inserting direction-override wrappers

   <span dir="ltr"> … </span>

around runs of text whose natural direction conflicts with their
surroundings. It tries hard to insert as few wrappers as possible: a
single opposite-direction word is tolerated, and consecutive
opposite-direction words, even across element boundaries, are collected
into a single wrapper.

This is not a conforming implementation of UAX#9. Paired brackets,
isolates and embedding levels are not considered. Instead a simple
per-word and per-phrase heuristic is used.

BSD License

Copyright (c) 2021–25, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

The algorithm is split into stages, each living in its own sub-package:

   charclass   classifies single code-points as LTR, RTL, neutral or whitespace
   phrase      splits plain text into words and groups words into phrases
   markup      is the boundary to the host markup parser (golang.org/x/net/html)
   tree        mirrors the markup tree, aggregating direction counts bottom-up
   render      walks the component tree and serializes it to markup text
   rewrite     sequences decode → parse → build → render for clients

Command dirfix (in cmd/dirfix) is a command line front end for package
rewrite.

Base package dirfix provides the types shared by all stages: Direction,
Phrase and the span automaton.

Phrases

A phrase is a maximal run of words sharing one direction, or a run of
neutral words. Neutral words (digits, punctuation) which are sandwiched
between two phrases of the same direction become part of that phrase.
Consequently a neutral phrase may only occur at the start of a text, at a
change of direction, or at the end of a text.

Spans

Rendering a component tree keeps track of at most one open
direction-override wrapper per element. The wrapper is represented by
type Span, a tiny automaton with transitions start, extend, queue and
close. Offering a unit of rendered text to an open span will either extend
the span (unit has the span's direction), queue the unit (a lone
opposite-direction word, or a void element like a line break), or close the
span (a second opposite-direction unit, a multi-word opposite-direction
unit, or a neutral unit after opposite content has been seen).

Spans are short-lived objects, so they are pooled.
*/
package dirfix

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
