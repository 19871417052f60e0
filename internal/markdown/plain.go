package markdown

import "github.com/strogo/wok/pkg/interfaces"

// Plain returns body text unchanged.
type Plain struct{}

var _ interfaces.MarkupRenderer = Plain{}

func (Plain) Render(source string) (string, error) {
	return source, nil
}
