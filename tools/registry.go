package tools

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/rowanvale/toolloop/chat"
)

// Registry maps tool names to executors. The advertised catalog keeps
// registration order, so the order sent to the model is caller-controlled
// and stable across turns.
type Registry struct {
	defs *orderedmap.OrderedMap[string, ToolDefinition]
}

func NewRegistry() *Registry {
	return &Registry{defs: orderedmap.New[string, ToolDefinition]()}
}

// Register adds a definition. Empty names, nil executors, and duplicate
// names are rejected.
func (r *Registry) Register(def ToolDefinition) error {
	if def.Name == "" {
		return fmt.Errorf("tools: tool name is empty")
	}
	if def.Function == nil {
		return fmt.Errorf("tools: %s has no executor", def.Name)
	}
	if _, exists := r.defs.Get(def.Name); exists {
		return fmt.Errorf("tools: %s already registered", def.Name)
	}
	r.defs.Set(def.Name, def)
	return nil
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return r.defs.Len()
}

// Definitions returns the tool catalog to advertise, in registration order.
func (r *Registry) Definitions() []chat.Tool {
	defs := make([]ToolDefinition, 0, r.defs.Len())
	for pair := r.defs.Oldest(); pair != nil; pair = pair.Next() {
		defs = append(defs, pair.Value)
	}
	return lo.Map(defs, func(d ToolDefinition, _ int) chat.Tool {
		return chat.Tool{
			Type: "function",
			Function: chat.ToolFunction{
				Name:        d.Name,
				Description: d.Description,
				Parameters:  d.InputSchema,
			},
		}
	})
}

// Execute runs the named tool and returns its serialized result. Unknown
// names and executor failures are folded into an {"error": ...} payload
// string rather than a Go error, so the failure stays visible to the model
// and the conversation can continue.
func (r *Registry) Execute(name string, args map[string]any) string {
	def, ok := r.defs.Get(name)
	if !ok {
		return errorPayload("Unknown function: " + name)
	}
	input, err := json.Marshal(args)
	if err != nil {
		return errorPayload(fmt.Sprintf("invalid arguments for %s: %v", name, err))
	}
	out, err := def.Function(input)
	if err != nil {
		return errorPayload(err.Error())
	}
	return out
}

func errorPayload(msg string) string {
	b, _ := json.Marshal(map[string]string{"error": msg})
	return string(b)
}
