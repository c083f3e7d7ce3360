package chat

// Key is the subset of input keys the composer cares about.
type Key string

const KeyEnter Key = "Enter"

// Action is what the composer should do with a key press.
type Action int

const (
	ActionNone Action = iota
	ActionSubmit
	ActionInsertNewline
)

// KeyPress is one keystroke in the message input.
type KeyPress struct {
	Key   Key
	Shift bool
}

// Resolve applies the submit contract: Enter submits and suppresses the
// newline, Shift+Enter inserts a literal newline without submitting.
func (k KeyPress) Resolve() Action {
	if k.Key != KeyEnter {
		return ActionNone
	}
	if k.Shift {
		return ActionInsertNewline
	}
	return ActionSubmit
}
