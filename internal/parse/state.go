// Package parse holds the token cursor shared by nested parsers and command-line splitting.
package parse

// State is a cursor over an immutable list of tokens. Nested parsers share one State so
// that tokens consumed by a child are no longer visible to its parent.
type State interface {
	Done() bool          // True when every token was consumed
	Current() string     // Get the current token ("" when Done)
	Consume() string     // Return the current token and advance past it
	Remaining() []string // Copy of the tokens not yet consumed
	Drain() []string     // Remaining followed by consuming everything
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State positioned on the first of args. args must not be modified
// by the caller while the State is in use.
func NewState(args []string) State {
	return &DefaultState{args: args}
}

// Done reports whether all tokens were consumed
func (s *DefaultState) Done() bool {
	return s.pos >= len(s.args)
}

// Current returns the current token
func (s *DefaultState) Current() string {
	if s.Done() {
		return ""
	}

	return s.args[s.pos]
}

// Consume returns the current token and advances to the next one
func (s *DefaultState) Consume() string {
	if s.Done() {
		return ""
	}
	arg := s.args[s.pos]
	s.pos++

	return arg
}

// Remaining returns the tokens which have not been consumed yet
func (s *DefaultState) Remaining() []string {
	if s.Done() {
		return []string{}
	}

	return append([]string{}, s.args[s.pos:]...)
}

// Drain returns the remaining tokens and marks them consumed
func (s *DefaultState) Drain() []string {
	rest := s.Remaining()
	s.pos = len(s.args)

	return rest
}
