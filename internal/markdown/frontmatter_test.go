package markdown

import (
	"strings"
	"testing"
)

func TestSplitHeaderWithoutDelimiter(t *testing.T) {
	inputs := []string{
		"",
		"Just a body",
		"line one\nline two\n",
		"text with --- inline dashes",
		"----\nfour dashes is not a delimiter",
	}
	for _, input := range inputs {
		split := SplitHeader(input)
		if split.HasHeader || split.Header != "" {
			t.Fatalf("SplitHeader(%q) unexpectedly found a header: %+v", input, split)
		}
		if split.Body != input {
			t.Fatalf("SplitHeader(%q) body = %q", input, split.Body)
		}
	}
}

func TestSplitHeaderAtFirstDelimiter(t *testing.T) {
	source := "title: Hello\nslug: hello\n---\nHi there"

	split := SplitHeader(source)

	if !split.HasHeader {
		t.Fatal("expected header")
	}
	if split.Header != "title: Hello\nslug: hello\n" {
		t.Fatalf("unexpected header %q", split.Header)
	}
	if split.Body != "Hi there" {
		t.Fatalf("unexpected body %q", split.Body)
	}
}

func TestSplitHeaderKeepsLaterDelimitersInBody(t *testing.T) {
	source := "title: Rules\n---\nAbove\n\n---\n\nBelow\n---\n"

	split := SplitHeader(source)

	if split.Header != "title: Rules\n" {
		t.Fatalf("unexpected header %q", split.Header)
	}
	if split.Body != "Above\n\n---\n\nBelow\n---\n" {
		t.Fatalf("unexpected body %q", split.Body)
	}
}

func TestSplitHeaderToleratesCRLFAndTrailingSpace(t *testing.T) {
	split := SplitHeader("title: Win\r\n---  \r\nBody\r\n")
	if !split.HasHeader || split.Header != "title: Win\r\n" || split.Body != "Body\r\n" {
		t.Fatalf("unexpected split %+v", split)
	}
}

func TestSplitHeaderDelimiterAtEOF(t *testing.T) {
	split := SplitHeader("title: Empty\n---")
	if !split.HasHeader || split.Body != "" || split.Header != "title: Empty\n" {
		t.Fatalf("unexpected split %+v", split)
	}
}

func TestSplitHeaderLeadingDelimiterWithoutFencing(t *testing.T) {
	split := SplitHeader("---\ntitle: x\n---\nBody")
	if !split.HasHeader || split.Header != "" {
		t.Fatalf("expected empty header, got %+v", split)
	}
	if split.Body != "title: x\n---\nBody" {
		t.Fatalf("unexpected body %q", split.Body)
	}
}

func TestSplitHeaderFenced(t *testing.T) {
	split := SplitHeader("---\ntitle: Fenced\n---\nBody\n\n---\nmore", WithFencedHeader(true))
	if !split.Fenced || !split.HasHeader {
		t.Fatalf("expected fenced header, got %+v", split)
	}
	if !strings.Contains(split.Header, "title: Fenced") {
		t.Fatalf("unexpected header %q", split.Header)
	}
	if !strings.HasPrefix(strings.TrimLeft(split.Body, "\n"), "Body") || !strings.Contains(split.Body, "---\nmore") {
		t.Fatalf("unexpected body %q", split.Body)
	}
}

func TestSplitHeaderFencedOnlyAppliesToLeadingDelimiter(t *testing.T) {
	split := SplitHeader("title: x\n---\nBody", WithFencedHeader(true))
	if split.Fenced || split.Header != "title: x\n" || split.Body != "Body" {
		t.Fatalf("expected base split, got %+v", split)
	}
}

func TestSplitHeaderStripsBOM(t *testing.T) {
	split := SplitHeader("\ufefftitle: x\n---\nBody")
	if split.Header != "title: x\n" {
		t.Fatalf("expected BOM to be stripped, got %q", split.Header)
	}
}
