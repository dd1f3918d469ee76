package runner

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/rowanvale/toolloop/chat"
)

// turnOutcome classifies one successful endpoint response.
type turnOutcome int

const (
	outcomeFinalAnswer turnOutcome = iota
	outcomeToolCalls
)

// interpretResponse parses a raw response into the next action: a final
// answer, a batch of tool calls (sanitized, ascending index order), or a
// *TurnError for protocol failures. Pure classify step; state mutation
// happens only in the runner loop.
func interpretResponse(status int, body []byte) (turnOutcome, chat.Message, error) {
	if status < 200 || status > 299 {
		return 0, chat.Message{}, &TurnError{
			Category: ProtocolFailure,
			Kind:     "bad_status",
			Status:   status,
			Err:      fmt.Errorf("unexpected HTTP status %d", status),
		}
	}
	if !gjson.ValidBytes(body) {
		return 0, chat.Message{}, &TurnError{
			Category: ProtocolFailure,
			Kind:     "bad_body",
			Err:      fmt.Errorf("response body is not valid JSON"),
		}
	}

	rawMsg := gjson.GetBytes(body, "message")
	if !rawMsg.Exists() || !rawMsg.IsObject() {
		return 0, chat.Message{}, &TurnError{
			Category: ProtocolFailure,
			Kind:     "missing_field",
			Err:      fmt.Errorf("response has no message object"),
		}
	}

	// Normalize float-encoded index fields before the typed decode so drift
	// never reaches stored history.
	sanitized := chat.SanitizeMessage([]byte(rawMsg.Raw))

	var msg chat.Message
	if err := json.Unmarshal(sanitized, &msg); err != nil {
		return 0, chat.Message{}, &TurnError{
			Category: ProtocolFailure,
			Kind:     "bad_body",
			Err:      fmt.Errorf("decode message: %w", err),
		}
	}
	if msg.Role == "" {
		msg.Role = chat.RoleAssistant
	}

	if len(msg.ToolCalls) == 0 {
		return outcomeFinalAnswer, msg, nil
	}

	// Execution order is ascending index regardless of wire order.
	sort.SliceStable(msg.ToolCalls, func(i, j int) bool {
		return msg.ToolCalls[i].Index < msg.ToolCalls[j].Index
	})
	return outcomeToolCalls, msg, nil
}
