// Package runner drives the tool-calling loop against the chat endpoint:
// it builds requests from history, classifies responses, dispatches tool
// calls, and advances the turn state machine.
//
// Invariants:
//   - At most one request is in flight per conversation.
//   - All tool calls of one assistant turn are resolved and appended as a
//     single batch before the one follow-up request is issued.
//   - A failed exchange appends nothing; history is exactly as it was before
//     the failed turn began.
//
// Flow:
//
//	user(text) -> assistant(tool_calls) -> tool(results...) -> assistant(text)
package runner
