package comments

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/arjenvk/threadbare/domain"
)

func TestSnippet_CollapsesWhitespaceAndGIFs(t *testing.T) {
	c := domain.Comment{
		BodyMarkdown: "look at\n\nthis  ![gif](https://i.redd.it/abc.gif)\nwow",
	}
	got := Snippet(&c)
	want := "look at this [gif] wow"
	if got != want {
		t.Fatalf("snippet mismatch: got %q want %q", got, want)
	}
}

func TestSnippet_TruncatesToDisplayWidth(t *testing.T) {
	c := domain.Comment{BodyMarkdown: strings.Repeat("word ", 60)}
	got := Snippet(&c)
	if w := runewidth.StringWidth(got); w > SnippetWidth {
		t.Fatalf("snippet too wide: %d cells", w)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("truncated snippet should end with an ellipsis: %q", got)
	}
}

func TestSnippet_WideRunesCountAsTwoCells(t *testing.T) {
	c := domain.Comment{BodyMarkdown: strings.Repeat("面", 80)}
	got := Snippet(&c)
	if w := runewidth.StringWidth(got); w > SnippetWidth {
		t.Fatalf("snippet too wide: %d cells", w)
	}
}

func TestSnippet_FallsBackToHTML(t *testing.T) {
	c := domain.Comment{BodyHTML: "<p>from &amp; html</p>"}
	if got := Snippet(&c); got != "from & html" {
		t.Fatalf("html fallback mismatch: %q", got)
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain", in: "just text", want: "just text"},
		{name: "paragraphs", in: "<p>one</p><p>two</p>", want: "one\ntwo"},
		{name: "entities", in: "<p>a &lt; b &amp;&amp; c</p>", want: "a < b && c"},
		{name: "nested", in: "<blockquote><p>quoted</p></blockquote>after", want: "quoted\n\nafter"},
		{name: "links keep text", in: `<a href="https://x.test">label</a>`, want: "label"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripHTML(tc.in); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}
