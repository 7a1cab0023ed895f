// Package vo defines view objects exposed to upper layers.
package vo

// Greeting encapsulates the greeting text returned to API consumers.
// It carries no structure beyond the text itself and is never mutated after construction.
type Greeting struct {
	Message string
}

// NewGreeting wraps text as a Greeting.
func NewGreeting(message string) *Greeting {
	return &Greeting{Message: message}
}

// String returns the greeting text, or "" for a nil Greeting.
func (g *Greeting) String() string {
	if g == nil {
		return ""
	}
	return g.Message
}
