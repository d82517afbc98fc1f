package dirfix

import "fmt"

// Phrase is a run of text with a single direction. It is the unit of work
// for the span automaton: plain-text phrases produced by package phrase as
// well as rendered markup of complete elements are handed to spans as
// Phrases.
//
// A Phrase with Dir == Neutral consists of neutral words only (digits,
// punctuation) or is a void element.
type Phrase struct {
	Text            string    // plain text or markup, depending on the stage
	Dir             Direction // direction of the phrase, may be Neutral
	MultipleWords   bool      // more than one word
	ContainsNeutral bool      // contains digits or neutral punctuation
}

// IsVoid is true for a direction-less phrase without any neutral markers,
// i.e. a placeholder for a void element.
func (p Phrase) IsVoid() bool {
	return p.Dir == Neutral && !p.ContainsNeutral
}

// Simple stringer for debugging purposes.
func (p Phrase) String() string {
	flags := ""
	if p.MultipleWords {
		flags += "+"
	}
	if p.ContainsNeutral {
		flags += "#"
	}
	dir := p.Dir.String()
	if dir == "" {
		dir = "neutral"
	}
	return fmt.Sprintf("[%s%s %q]", dir, flags, p.Text)
}
