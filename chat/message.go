package chat

// Message roles understood by the chat endpoint.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
	RoleSystem    = "system"
)

// Message is one conversation turn contribution. Content is empty on
// assistant messages that only carry tool calls. A tool-role message's
// content is the serialized result of exactly one prior tool call.
type Message struct {
	Role      string     `json:"role"`
	Content   string     `json:"content,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// ToolCall is a single invocation request emitted by the model. Index is the
// position within the emitting message's tool-call sequence.
type ToolCall struct {
	Index    int          `json:"index"`
	Function FunctionCall `json:"function"`
}

// FunctionCall names a registered tool and carries its structured arguments.
type FunctionCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// Tool is the wire form of an advertised tool schema.
type Tool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

// ToolFunction describes a callable capability to the model. Parameters is a
// JSON-Schema object (type/properties/required).
type ToolFunction struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  any    `json:"parameters"`
}
