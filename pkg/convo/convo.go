// Package convo holds the shared conversation history for the voice agent.
//
// The store is process-wide mutable state: every request appends the user and
// assistant turns of its exchange, and reply generation reads a trailing
// window of turns for context. All access goes through a mutex so concurrent
// requests never interleave their turn pairs or observe a half-applied
// update.
package convo

import "sync"

// Role identifies the speaker of a turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged message in the conversation.
// Turns are immutable once stored.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// DefaultMaxTurns caps stored history. Only a trailing window is ever read,
// so trimming the oldest turns is not externally observable; the cap exists
// for memory safety in long-lived processes.
const DefaultMaxTurns = 1000

// Store is a mutex-guarded, append-only conversation history.
// The zero value is not usable; call NewStore.
type Store struct {
	mu       sync.Mutex
	turns    []Turn
	maxTurns int
}

// NewStore creates an empty conversation store with the default cap.
func NewStore() *Store {
	return NewStoreWithCap(DefaultMaxTurns)
}

// NewStoreWithCap creates an empty store that retains at most maxTurns turns.
// A cap below 2 is treated as the default.
func NewStoreWithCap(maxTurns int) *Store {
	if maxTurns < 2 {
		maxTurns = DefaultMaxTurns
	}
	return &Store{maxTurns: maxTurns}
}

// AppendExchange appends the user turn and the assistant turn of one
// completed exchange as a single atomic update.
func (s *Store) AppendExchange(userText, assistantText string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = append(s.turns,
		Turn{Role: RoleUser, Content: userText},
		Turn{Role: RoleAssistant, Content: assistantText},
	)

	if len(s.turns) > s.maxTurns {
		trimmed := make([]Turn, s.maxTurns)
		copy(trimmed, s.turns[len(s.turns)-s.maxTurns:])
		s.turns = trimmed
	}
}

// Window returns a copy of the last n stored turns, oldest first.
// It is a consistent point-in-time snapshot.
func (s *Store) Window(n int) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 || len(s.turns) == 0 {
		return nil
	}
	if n > len(s.turns) {
		n = len(s.turns)
	}

	window := make([]Turn, n)
	copy(window, s.turns[len(s.turns)-n:])
	return window
}

// Len returns the number of stored turns.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// Reset clears the history atomically.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}
