package interfaces

// TemplateEngine resolves templates by name from its configured source.
// A single engine is expected to be shared read-only across pages.
type TemplateEngine interface {
	Load(name string) (Template, error)
}

// Template renders a loaded template against a variable bundle.
type Template interface {
	Render(vars map[string]any) (string, error)
}
