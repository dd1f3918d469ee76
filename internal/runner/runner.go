package runner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rowanvale/toolloop/chat"
	"github.com/rowanvale/toolloop/internal/client"
	"github.com/rowanvale/toolloop/internal/telemetry"
	"github.com/rowanvale/toolloop/memory"
	"github.com/rowanvale/toolloop/tools"
)

// State is the turn state of a conversation.
type State int

const (
	StateIdle State = iota
	StateRequestInFlight
	StateToolCallsPending
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequestInFlight:
		return "request_in_flight"
	case StateToolCallsPending:
		return "tool_calls_pending"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Runner drives the tool-calling loop for a single conversation. It owns
// the history exclusively; entering RequestInFlight is only legal from Idle
// or from the post-execution point of ToolCallsPending, which is what keeps
// at most one request in flight.
type Runner struct {
	sender client.Sender
	reg    *tools.Registry
	conv   *memory.Conversation
	model  string
	state  State
}

func New(sender client.Sender, reg *tools.Registry, model string) *Runner {
	return &Runner{
		sender: sender,
		reg:    reg,
		conv:   memory.NewConversation(),
		model:  model,
		state:  StateIdle,
	}
}

// State reports the current turn state.
func (r *Runner) State() State { return r.state }

// History returns a snapshot of the conversation so far.
func (r *Runner) History() []chat.Message { return r.conv.Snapshot() }

// Last returns the most recently stored message.
func (r *Runner) Last() (chat.Message, error) { return r.conv.Last() }

// RunTurn advances the conversation with one user message and drives the
// loop to completion: it returns the final assistant answer, or a
// *TurnError (or ErrTurnInFlight) with the history untouched by the failed
// exchange. Done and Failed end the previous cycle; a new user message
// restarts from Idle.
func (r *Runner) RunTurn(ctx context.Context, user string) (string, error) {
	switch r.state {
	case StateRequestInFlight, StateToolCallsPending:
		return "", ErrTurnInFlight
	}
	r.state = StateIdle

	turnID := uuid.NewString()
	ctx = telemetry.WithTurnID(ctx, turnID)
	telemetry.EmitPromptFeatures(ctx, user)

	// The user message is staged rather than appended: if the first exchange
	// fails, the history must be exactly as it was before the turn began.
	staged := []chat.Message{{Role: chat.RoleUser, Content: user}}

	for {
		r.state = StateRequestInFlight
		req := chat.NewRequest(r.model, append(r.conv.Snapshot(), staged...), r.reg.Definitions())

		start := time.Now()
		resp, err := r.sender.Send(ctx, req)
		if err != nil {
			return "", r.fail(turnID, &TurnError{Category: TransportFailure, Kind: "send", Err: err})
		}
		telemetry.Emit("request_sent", map[string]any{
			"turn_id":     turnID,
			"model":       r.model,
			"status":      resp.StatusCode,
			"duration_ms": time.Since(start).Milliseconds(),
			"messages":    len(req.Messages),
			"tools":       len(req.Tools),
		})

		outcome, msg, err := interpretResponse(resp.StatusCode, resp.Body)
		if err != nil {
			return "", r.fail(turnID, err)
		}

		// The exchange succeeded: the staged batch and the assistant message
		// become history in one append.
		r.conv.Append(append(staged, msg)...)
		staged = nil

		if outcome == outcomeFinalAnswer {
			r.state = StateDone
			telemetry.Emit("turn_outcome", map[string]any{"turn_id": turnID, "state": r.state.String()})
			return msg.Content, nil
		}

		// Resolve every call of this turn, then append all results as one
		// batch and issue exactly one follow-up request. One request per call
		// would put overlapping requests in flight against shared history.
		r.state = StateToolCallsPending
		results := make([]chat.Message, 0, len(msg.ToolCalls))
		for _, call := range msg.ToolCalls {
			results = append(results, chat.Message{
				Role:    chat.RoleTool,
				Content: r.execTool(ctx, call),
			})
		}
		r.conv.Append(results...)
	}
}

// execTool dispatches one call through the registry. Unknown tools and
// executor failures come back as error payload strings, never as aborts.
func (r *Runner) execTool(ctx context.Context, call chat.ToolCall) string {
	turnID, _ := telemetry.TurnIDFromContext(ctx)
	start := time.Now()
	out := r.reg.Execute(call.Function.Name, call.Function.Arguments)
	telemetry.Emit("tool_exec", map[string]any{
		"turn_id":     turnID,
		"tool_name":   call.Function.Name,
		"index":       call.Index,
		"duration_ms": time.Since(start).Milliseconds(),
		"output_size": len(out),
	})
	return out
}

func (r *Runner) fail(turnID string, err error) error {
	r.state = StateFailed
	telemetry.Emit("turn_outcome", map[string]any{
		"turn_id": turnID,
		"state":   r.state.String(),
		"error":   err.Error(),
	})
	return err
}
