// Package memory provides the append-only conversation history.
//
// Ownership model:
//   - One Conversation per runner; no other component holds a reference that
//     outlives a single turn.
//   - Entries are never removed, reordered, or mutated in place.
package memory
