package routing

import "fmt"

// History selects how the client reflects navigation state in the address bar.
type History string

const (
	// HistoryWeb uses real URL paths. The server must answer every route path.
	HistoryWeb History = "web"

	// HistoryHash keeps the route in the URL fragment. The server only answers "/".
	HistoryHash History = "hash"
)

// Validate checks if the history mode is supported.
func (h History) Validate() error {
	switch h {
	case HistoryWeb, HistoryHash:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be web or hash)", ErrInvalidHistory, string(h))
	}
}
