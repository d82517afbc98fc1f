package dirfix

import (
	"context"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	pool "github.com/jolestar/go-commons-pool"
)

// Action is the outcome of offering a unit of text to an open span.
type Action int8

// Transitions of the span automaton, apart from the initial start.
const (
	Queued   Action = iota // unit has been appended to the waiting list
	Extended               // unit (and the waiting list) became part of the span
	Closed                 // span has been closed; unit follows the closing tag
)

func (a Action) String() string {
	switch a {
	case Queued:
		return "queued"
	case Extended:
		return "extended"
	case Closed:
		return "closed"
	}
	return "?"
}

// A Span represents a currently open direction-override wrapper, i.e. a
// <span dir="…"> which has been written to the output but not yet closed.
// It collects subsequent content of the same direction until it is forced
// to close.
//
// Content which does not (yet) belong to the span is kept in a waiting list.
// Waiting content is either flushed into the span, if more content of the
// span's direction follows, or written after the closing tag.
//
// Spans are owned by the render frame which started them. They are passed
// down into child renders and threaded back up via the render result.
// A span must not be used after it has been closed.
type Span struct {
	dir              Direction       // direction of the wrapper
	opposite         Direction       // opposite of dir
	waiting          *arraylist.List // of Phrase
	containsOpposite bool            // waiting list contains strong content
	voidCount        int             // number of void placeholders waiting
}

// Spans are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type spanPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalSpanPool *spanPool

func init() {
	globalSpanPool = &spanPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			span := &Span{waiting: arraylist.New()}
			return span, nil
		})
	globalSpanPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalSpanPool.opool = pool.NewObjectPool(globalSpanPool.ctx, factory, config)
}

// OpenSpan starts a new span for a direction. The opening tag is not part
// of the span's state; it is written by the caller. The span is pooled for
// efficiency and will be released as soon as it closes.
func OpenSpan(dir Direction) *Span {
	o, err := globalSpanPool.opool.BorrowObject(globalSpanPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow span from pool: %v", err)
		o = &Span{waiting: arraylist.New()}
	}
	span := o.(*Span)
	span.dir = dir
	span.opposite = dir.Opposite()
	CT().P("span", dir.String()).Debugf("open span")
	return span
}

// Clears the span and puts it back into the pool.
func (span *Span) releaseIntoPool() {
	span.resetWaiting()
	span.dir, span.opposite = Neutral, Neutral
	_ = globalSpanPool.opool.ReturnObject(globalSpanPool.ctx, span)
}

// Direction returns the direction of the span's wrapper.
func (span *Span) Direction() Direction {
	return span.dir
}

// Simple stringer for debugging purposes.
func (span *Span) String() string {
	if span == nil {
		return "[no span]"
	}
	return fmt.Sprintf("[span %s, waiting=%d, void=%d]", span.dir, span.waiting.Size(),
		span.voidCount)
}

// Queue appends a unit to the waiting list. Void units are placeholders for
// elements like line breaks; they do not count as content when deciding
// whether the span has to close.
func (span *Span) Queue(unit Phrase, isVoid bool) {
	if unit.Dir != Neutral {
		span.containsOpposite = true
	}
	span.waiting.Add(unit)
	if isVoid {
		span.voidCount++
	}
}

// Waiting returns the text of all units in the waiting list.
func (span *Span) Waiting() string {
	var sb strings.Builder
	it := span.waiting.Iterator()
	for it.Next() {
		sb.WriteString(it.Value().(Phrase).Text)
	}
	return sb.String()
}

// shouldExtend is true if a unit has the span's direction.
func (span *Span) shouldExtend(unit Phrase) bool {
	return unit.Dir == span.dir
}

// shouldClose checks if a unit forces the span to close. A lone
// opposite-direction word does not; a multi-word opposite-direction unit or
// a second opposite unit does. Void units do not count as waiting content,
// so a line break between two opposite words does not close the span.
// A neutral unit closes a span which already has opposite content waiting.
func (span *Span) shouldClose(unit Phrase) bool {
	if unit.Dir == span.opposite {
		return unit.MultipleWords || span.waiting.Size()-span.voidCount > 0
	}
	return unit.Dir == Neutral && unit.ContainsNeutral && span.containsOpposite
}

// Offer hands the next unit of text to the span. If space is true, a
// separating space is put in front of the unit.
//
// Offer returns the text to be written to the output and the transition
// performed. If the action is Closed, the returned text starts with the
// closing tag, and the span has been released and must not be used any
// more.
func (span *Span) Offer(unit Phrase, space bool) (string, Action) {
	prefix := ""
	if space {
		prefix = " "
	}
	if span.shouldClose(unit) {
		text := "</span>" + span.Waiting() + prefix + unit.Text
		CT().P("span", span.dir.String()).Debugf("close span at %v", unit)
		span.releaseIntoPool()
		return text, Closed
	}
	if span.shouldExtend(unit) {
		text := span.Waiting() + prefix + unit.Text
		span.resetWaiting()
		CT().P("span", span.dir.String()).Debugf("extend span with %v", unit)
		return text, Extended
	}
	unit.Text = prefix + unit.Text
	span.Queue(unit, unit.IsVoid())
	CT().P("span", span.dir.String()).Debugf("queue %v", unit)
	return "", Queued
}

// Close forces the span to close, returning the closing tag followed by
// any waiting content. The span is released and must not be used any more.
func (span *Span) Close() string {
	text := "</span>" + span.Waiting()
	CT().P("span", span.dir.String()).Debugf("force close span")
	span.releaseIntoPool()
	return text
}

func (span *Span) resetWaiting() {
	span.waiting.Clear()
	span.containsOpposite = false
	span.voidCount = 0
}
