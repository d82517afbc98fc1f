package markup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseFragment(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	root, err := ParseFragment(`Hello <b class="x">big</b> world<br><!-- note -->`)
	if err != nil {
		t.Fatal(err)
	}
	if root.Type() != ElementNode || root.TagName() != "div" {
		t.Fatalf("expected root to be a div element, is %s %q", root.Type(), root.TagName())
	}
	children := root.Children()
	types := make([]NodeType, len(children))
	for i, c := range children {
		types[i] = c.Type()
	}
	expected := []NodeType{TextNode, ElementNode, TextNode, ElementNode, OpaqueNode}
	if diff := cmp.Diff(expected, types); diff != "" {
		t.Fatalf("child types mismatch (-want +got):\n%s", diff)
	}
	if children[0].TextContent() != "Hello " {
		t.Errorf("expected text 'Hello ', have %q", children[0].TextContent())
	}
	b := children[1]
	if diff := cmp.Diff([]Attribute{{Name: "class", Value: "x"}}, b.Attributes()); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}
	if children[4].Markup() != "<!-- note -->" {
		t.Errorf("expected comment to render verbatim, have %q", children[4].Markup())
	}
}

func TestOpaqueElements(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	root, err := ParseFragment(`<script>if (a < b) {}</script><style>p{}</style>`)
	if err != nil {
		t.Fatal(err)
	}
	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children, have %d", len(children))
	}
	for _, c := range children {
		if c.Type() != OpaqueNode {
			t.Errorf("expected %q to be opaque", c.Markup())
		}
	}
	if m := children[0].Markup(); m != `<script>if (a < b) {}</script>` {
		t.Errorf("script not rendered verbatim: %q", m)
	}
	if !IsOpaqueTag("TEXTAREA") || IsOpaqueTag("div") {
		t.Errorf("IsOpaqueTag misclassifies tags")
	}
}

func TestParseDocument(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	doc := `<!DOCTYPE html><html><head><title>T</title></head><body><p>Hi</p></body></html>`
	body, err := ParseDocument(doc)
	if err != nil {
		t.Fatal(err)
	}
	if body.TagName() != "body" {
		t.Fatalf("expected body, have %q", body.TagName())
	}
	if len(body.Children()) != 1 || body.Children()[0].TagName() != "p" {
		t.Errorf("expected body to contain a single paragraph")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil) != nil {
		t.Errorf("expected nil node for nil input")
	}
}

func TestDecode(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var tests = []struct {
		input    string
		opts     DecodeOptions
		expected string
	}{
		{"A &amp; B", DefaultDecodeOptions, "A & B"},
		{"A&amp;nbsp;B", DefaultDecodeOptions, "A\u00a0B"},
		{"A&amp;nbsp;B", DecodeOptions{}, "A&nbsp;B"},
		{"A&amp;nbsp;B", DecodeOptions{DecodeTwice: true, NormalizeSpaces: true}, "A B"},
		{"&#1587;&#x644;", DefaultDecodeOptions, "سل"},
		{"1&#8239;000", DecodeOptions{NormalizeSpaces: true}, "1 000"},
		{"OK &check;", DecodeOptions{Entities: map[string]string{"check": "✔"}}, "OK ✔"},
		{"&smile; &frown;", DecodeOptions{Entities: map[string]string{
			"&smile;": ":-)",
			"frown":   ":-(",
		}}, ":-) :-("},
		{"&lt;b&gt;", DefaultDecodeOptions, "<b>"},
	}
	for i, test := range tests {
		if out := Decode(test.input, test.opts); out != test.expected {
			t.Errorf("test #%d: expected %q to decode to %q, have %q", i, test.input, test.expected, out)
		}
	}
}

func TestEscape(t *testing.T) {
	if s := EscapeText(`a < b & "c"` + "\u00a0"); s != `a &lt; b &amp; "c"&nbsp;` {
		t.Errorf("unexpected text escaping: %q", s)
	}
	tag := StartTag("a", []Attribute{{Name: "href", Value: `x?a=1&b="2"`}, {Name: "dir", Value: "rtl"}})
	if tag != `<a href="x?a=1&amp;b=&#34;2&#34;" dir="rtl">` {
		t.Errorf("unexpected start tag: %q", tag)
	}
	if EndTag("a") != "</a>" {
		t.Errorf("unexpected end tag")
	}
}
