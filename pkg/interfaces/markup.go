package interfaces

// MarkupRenderer converts page body text into an HTML fragment. The page
// pipeline is polymorphic over any implementation, so passthrough and
// Markdown renderers are interchangeable.
type MarkupRenderer interface {
	Render(source string) (string, error)
}

// MarkupOptions customises Markdown rendering. Option names stay readable for
// configuration unmarshalling and CLI flags.
type MarkupOptions struct {
	Extensions     []string
	HardWraps      bool
	Unsafe         bool
	Sanitize       bool
	Highlight      bool
	HighlightStyle string
}
