package phrase

import (
	"io"
	"strings"

	"github.com/npillmayer/dirfix"
	"github.com/npillmayer/dirfix/charclass"
)

// Word is a contiguous run of non-whitespace characters. Its direction is the
// direction of its first strongly directional character; words without any
// strong character have direction dirfix.Neutral.
type Word struct {
	Text            string
	Dir             dirfix.Direction
	ContainsNeutral bool
}

// WordScanner reads runes from an io.RuneReader and splits them into words.
// Its interface is similar to bufio.Scanner: successive calls to Next()
// step through the words of the input, which will then be available through
// Word().
//
// Whitespace separates words. The first whitespace character after a word
// ends the word and is dropped. If trimming of spaces is off, any further
// whitespace characters are kept and glued to the front of the next word.
type WordScanner struct {
	reader     io.RuneReader
	trimSpaces bool
	word       strings.Builder
	dir        dirfix.Direction
	neutral    bool // current word contains neutral marks
	nonEmpty   bool // current word contains non-whitespace characters
	inSpace    bool // last character read was whitespace
	current    Word
	err        error
	atEOF      bool
}

// NewWordScanner creates a WordScanner for a rune reader. If trimSpaces is
// true, runs of whitespace collapse to a single separator.
func NewWordScanner(reader io.RuneReader, trimSpaces bool) *WordScanner {
	ws := &WordScanner{trimSpaces: trimSpaces}
	ws.Init(reader)
	return ws
}

// Init (re-)initializes a WordScanner with an io.RuneReader to read from.
func (ws *WordScanner) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	ws.reader = reader
	ws.resetWord()
	ws.inSpace = false
	ws.current = Word{}
	ws.err = nil
	ws.atEOF = false
}

// Next advances the scanner to the next word, which will then be available
// through Word(). It returns false when the end of the input is reached or an
// error occurs. After Next() returns false, Err() will return any error that
// occurred, except for io.EOF.
func (ws *WordScanner) Next() bool {
	for !ws.atEOF {
		r, _, err := ws.reader.ReadRune()
		if err != nil {
			ws.atEOF = true
			if err != io.EOF {
				ws.err = err
				return false
			}
			break
		}
		if charclass.IsSpace(r) {
			if ws.inSpace {
				if !ws.trimSpaces {
					ws.word.WriteRune(r) // glue extra spaces onto the next word
				}
				continue
			}
			ws.inSpace = true
			if ws.nonEmpty {
				ws.emit()
				return true
			}
			continue
		}
		ws.inSpace = false
		ws.word.WriteRune(r)
		if ws.dir == dirfix.Neutral { // direction is frozen at the first strong char
			ws.dir = charclass.DirectionOf(r)
		}
		if charclass.IsNeutralMark(r) {
			ws.neutral = true
		}
		ws.nonEmpty = true
	}
	if ws.nonEmpty {
		ws.emit()
		return true
	}
	return false
}

// Word returns the most recent word found by a call to Next().
func (ws *WordScanner) Word() Word {
	return ws.current
}

// Err returns the first non-EOF error that was encountered by the
// WordScanner.
func (ws *WordScanner) Err() error {
	return ws.err
}

func (ws *WordScanner) emit() {
	ws.current = Word{
		Text:            ws.word.String(),
		Dir:             ws.dir,
		ContainsNeutral: ws.neutral,
	}
	tracer().Debugf("word %q (%s)", ws.current.Text, ws.current.Dir)
	ws.resetWord()
}

func (ws *WordScanner) resetWord() {
	ws.word.Reset()
	ws.dir = dirfix.Neutral
	ws.neutral = false
	ws.nonEmpty = false
}

// Words splits a text into words.
func Words(text string, trimSpaces bool) []Word {
	var words []Word
	ws := NewWordScanner(strings.NewReader(text), trimSpaces)
	for ws.Next() {
		words = append(words, ws.Word())
	}
	return words
}
