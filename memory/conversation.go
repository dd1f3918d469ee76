package memory

import (
	"errors"

	"github.com/rowanvale/toolloop/chat"
)

// ErrEmptyHistory is returned by Last when nothing has been appended yet.
var ErrEmptyHistory = errors.New("memory: empty history")

// Conversation is the ordered, append-only history of one chat session.
type Conversation struct {
	msgs []chat.Message
}

func NewConversation() *Conversation {
	return &Conversation{msgs: make([]chat.Message, 0, 16)}
}

// Append adds the given messages to the end of the history as one batch.
// Messages are cloned on the way in so later caller-side mutation cannot
// reach stored state.
func (c *Conversation) Append(msgs ...chat.Message) {
	for _, m := range msgs {
		c.msgs = append(c.msgs, cloneMessage(m))
	}
}

// Snapshot returns the full ordered history. The returned slice and its
// messages are copies; callers must not assume they alias stored state.
func (c *Conversation) Snapshot() []chat.Message {
	out := make([]chat.Message, len(c.msgs))
	for i, m := range c.msgs {
		out[i] = cloneMessage(m)
	}
	return out
}

// Last returns the most recently appended message, or ErrEmptyHistory.
func (c *Conversation) Last() (chat.Message, error) {
	if len(c.msgs) == 0 {
		return chat.Message{}, ErrEmptyHistory
	}
	return cloneMessage(c.msgs[len(c.msgs)-1]), nil
}

// Len returns the number of stored messages.
func (c *Conversation) Len() int {
	return len(c.msgs)
}

func cloneMessage(m chat.Message) chat.Message {
	if len(m.ToolCalls) == 0 {
		return m
	}
	calls := make([]chat.ToolCall, len(m.ToolCalls))
	for i, tc := range m.ToolCalls {
		if tc.Function.Arguments != nil {
			tc.Function.Arguments = cloneValue(tc.Function.Arguments).(map[string]any)
		}
		calls[i] = tc
	}
	m.ToolCalls = calls
	return m
}

// cloneValue deep-copies the JSON-shaped value graphs carried in tool-call
// arguments (maps, slices, scalars).
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
