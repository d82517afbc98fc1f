package phrase

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/dirfix"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWords(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var tests = []struct {
		input    string
		trim     bool
		expected []Word
	}{
		{"Hello world", false, []Word{
			{Text: "Hello", Dir: dirfix.LTR},
			{Text: "world", Dir: dirfix.LTR},
		}},
		{"Hello  world", false, []Word{
			{Text: "Hello", Dir: dirfix.LTR},
			{Text: " world", Dir: dirfix.LTR},
		}},
		{"Hello  world", true, []Word{
			{Text: "Hello", Dir: dirfix.LTR},
			{Text: "world", Dir: dirfix.LTR},
		}},
		{"  سلام 42! ", true, []Word{
			{Text: "سلام", Dir: dirfix.RTL},
			{Text: "42!", Dir: dirfix.Neutral, ContainsNeutral: true},
		}},
		{"5No (سلام)", true, []Word{
			{Text: "5No", Dir: dirfix.LTR, ContainsNeutral: true},
			{Text: "(سلام)", Dir: dirfix.RTL, ContainsNeutral: true},
		}},
		{"A\u00a0B", true, []Word{
			{Text: "A", Dir: dirfix.LTR},
			{Text: "B", Dir: dirfix.LTR},
		}},
	}
	for i, test := range tests {
		words := Words(test.input, test.trim)
		if diff := cmp.Diff(test.expected, words); diff != "" {
			t.Errorf("test #%d: words of %q mismatch (-want +got):\n%s", i, test.input, diff)
		}
	}
}

func TestNoWords(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for _, input := range []string{"", " ", " \t\n  "} {
		if words := Words(input, false); len(words) != 0 {
			t.Errorf("expected no words for %q, have %v", input, words)
		}
	}
}

func TestWordScannerReInit(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	ws := NewWordScanner(strings.NewReader("one two"), true)
	n := 0
	for ws.Next() {
		n++
	}
	if n != 2 {
		t.Errorf("expected 2 words, have %d", n)
	}
	ws.Init(strings.NewReader("three"))
	if !ws.Next() || ws.Word().Text != "three" {
		t.Errorf("expected re-initialized scanner to read 'three', have %q", ws.Word().Text)
	}
	if ws.Next() {
		t.Errorf("expected scanner to be exhausted")
	}
	if ws.Err() != nil {
		t.Errorf("unexpected error: %v", ws.Err())
	}
}

func TestPhrases(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var tests = []struct {
		input    string
		expected []dirfix.Phrase
	}{
		{"Hello world.", []dirfix.Phrase{
			{Text: "Hello world.", Dir: dirfix.LTR, MultipleWords: true, ContainsNeutral: true},
		}},
		{"سلام hello amazing world دنیا", []dirfix.Phrase{
			{Text: "سلام", Dir: dirfix.RTL},
			{Text: "hello amazing world", Dir: dirfix.LTR, MultipleWords: true},
			{Text: "دنیا", Dir: dirfix.RTL},
		}},
		{"hello 42 world", []dirfix.Phrase{ // sandwich rule
			{Text: "hello 42 world", Dir: dirfix.LTR, MultipleWords: true, ContainsNeutral: true},
		}},
		{"hello 42 سلام", []dirfix.Phrase{
			{Text: "hello", Dir: dirfix.LTR},
			{Text: "42", Dir: dirfix.Neutral, ContainsNeutral: true},
			{Text: "سلام", Dir: dirfix.RTL},
		}},
		{"42 - hello", []dirfix.Phrase{
			{Text: "42 -", Dir: dirfix.Neutral, MultipleWords: true, ContainsNeutral: true},
			{Text: "hello", Dir: dirfix.LTR},
		}},
		{"hello !!", []dirfix.Phrase{
			{Text: "hello", Dir: dirfix.LTR},
			{Text: "!!", Dir: dirfix.Neutral, ContainsNeutral: true},
		}},
		{"سفارش No 56147 آماده است.", []dirfix.Phrase{
			{Text: "سفارش", Dir: dirfix.RTL},
			{Text: "No", Dir: dirfix.LTR},
			{Text: "56147", Dir: dirfix.Neutral, ContainsNeutral: true},
			{Text: "آماده است.", Dir: dirfix.RTL, MultipleWords: true, ContainsNeutral: true},
		}},
	}
	for i, test := range tests {
		phrases := Split(test.input, true)
		if diff := cmp.Diff(test.expected, phrases); diff != "" {
			t.Errorf("test #%d: phrases of %q mismatch (-want +got):\n%s", i, test.input, diff)
		}
	}
}

func TestPhraseOrderInvariants(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	vocabulary := []string{"hello", "سلام", "42", "world", "!", "דנ", "(x)", "3.14", "دنیا"}
	for n := 0; n < 500; n++ {
		var words []string
		for k, m := 0, n; k < 6; k, m = k+1, m/len(vocabulary)+n%7 {
			words = append(words, vocabulary[(m+k*n)%len(vocabulary)])
		}
		input := strings.Join(words, " ")
		if err := checkInvariants(Split(input, true)); err != nil {
			t.Fatalf("input %q: %v", input, err)
		}
	}
}

func checkInvariants(phrases []dirfix.Phrase) error {
	for i := 1; i < len(phrases); i++ {
		prev, p := phrases[i-1], phrases[i]
		if p.Dir == dirfix.Neutral && prev.Dir == dirfix.Neutral {
			return fmt.Errorf("adjacent neutral phrases at %d: %v %v", i, prev, p)
		}
		if p.Dir != dirfix.Neutral && p.Dir == prev.Dir {
			return fmt.Errorf("adjacent phrases with same direction at %d: %v %v", i, prev, p)
		}
		if p.Dir == dirfix.Neutral && i < len(phrases)-1 {
			if phrases[i+1].Dir == prev.Dir { // neutral must have been merged
				return fmt.Errorf("neutral phrase sandwiched between %v and %v", prev, phrases[i+1])
			}
		}
	}
	return nil
}

func ExampleSplit() {
	for _, p := range Split("I said سلام دنیا 2 times!", true) {
		fmt.Println(p)
	}
	// Output:
	// [ltr+ "I said"]
	// [rtl+ "سلام دنیا"]
	// [neutral# "2"]
	// [ltr# "times!"]
}
