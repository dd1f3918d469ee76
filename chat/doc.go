// Package chat defines the wire data model for the tool-calling chat
// endpoint, plus the request builder and the raw-message sanitizer.
//
// Invariants:
//   - ChatRequest.Stream is always false; incremental delivery is unsupported.
//   - tool_calls index fields are exact integers by the time a message is
//     decoded for storage (see SanitizeMessage).
package chat
