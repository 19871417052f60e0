package markdown

import (
	"strings"

	"github.com/adrg/frontmatter"
)

// Delimiter is the line separating a header block from the body.
const Delimiter = "---"

// Split is the result of separating a page source into header and body.
type Split struct {
	// Header is the raw text before the delimiter, newline included.
	Header string
	// Body is everything after the delimiter line.
	Body string
	// HasHeader reports whether a delimiter was found.
	HasHeader bool
	// Fenced reports whether the header used an opening and closing delimiter.
	Fenced bool
}

type splitConfig struct {
	fenced bool
}

// SplitOption configures SplitHeader.
type SplitOption func(*splitConfig)

// WithFencedHeader accepts headers wrapped between an opening and a closing
// delimiter line at the very top of the source.
func WithFencedHeader(enabled bool) SplitOption {
	return func(cfg *splitConfig) {
		cfg.fenced = enabled
	}
}

// SplitHeader separates source at the first line consisting of "---". Text
// before it is the header and text after it the body; later delimiter lines
// belong to the body. Without a delimiter the whole source is body.
func SplitHeader(source string, opts ...SplitOption) Split {
	cfg := splitConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	source = strings.TrimPrefix(source, "\ufeff")

	if cfg.fenced && isDelimiter(firstLine(source)) {
		if split, ok := splitFenced(source); ok {
			return split
		}
	}

	header, body, ok := cutAtDelimiter(source)
	if !ok {
		return Split{Body: source}
	}
	return Split{Header: header, Body: body, HasHeader: true}
}

func cutAtDelimiter(source string) (string, string, bool) {
	offset := 0
	for {
		rest := source[offset:]
		end := strings.IndexByte(rest, '\n')
		line, next := rest, len(source)
		if end >= 0 {
			line, next = rest[:end], offset+end+1
		}
		if isDelimiter(line) {
			return source[:offset], source[next:], true
		}
		if end < 0 {
			return "", source, false
		}
		offset = next
	}
}

// splitFenced hands "---\n...\n---" headers to adrg/frontmatter, capturing
// the raw block instead of decoding it so the caller owns deserialization.
func splitFenced(source string) (Split, bool) {
	var header string
	format := frontmatter.NewFormat(Delimiter, Delimiter, func(data []byte, v any) error {
		if target, ok := v.(*string); ok {
			*target = string(data)
		}
		return nil
	})

	body, err := frontmatter.MustParse(strings.NewReader(source), &header, format)
	if err != nil {
		return Split{}, false
	}
	return Split{Header: header, Body: string(body), HasHeader: true, Fenced: true}, true
}

func firstLine(source string) string {
	line, _, _ := strings.Cut(source, "\n")
	return line
}

func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t\r") == Delimiter
}
