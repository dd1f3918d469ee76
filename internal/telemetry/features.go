package telemetry

import (
	"context"

	"github.com/rowanvale/toolloop/internal/metrics"
)

// EmitPromptFeatures records basic local text features of a user prompt at
// the start of a turn. Only derived counts are emitted, never the prompt
// text itself.
func EmitPromptFeatures(ctx context.Context, prompt string) {
	if !observeEnabled() {
		return
	}
	turnID, _ := TurnIDFromContext(ctx)
	f := metrics.CountFeatures(prompt)
	Emit("prompt_features", map[string]any{
		"turn_id": turnID,
		"prompt": map[string]any{
			"bytes": f.Bytes,
			"runes": f.Runes,
			"words": f.Words,
			"lines": f.Lines,
		},
	})
}
