package chat

// ChatRequest is the body posted to the chat endpoint.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Tools    []Tool    `json:"tools,omitempty"`
	Stream   bool      `json:"stream"`
}

// ChatResponse is the body returned by the chat endpoint.
type ChatResponse struct {
	Model         string  `json:"model"`
	Message       Message `json:"message"`
	Done          bool    `json:"done"`
	TotalDuration int64   `json:"total_duration,omitempty"`
}

// NewRequest assembles a request from the current history and tool catalog.
// Stream is always false. A nil or empty catalog omits the tools field
// entirely, for model variants that do not support tool calling.
func NewRequest(model string, messages []Message, tools []Tool) ChatRequest {
	if len(tools) == 0 {
		tools = nil
	}
	return ChatRequest{Model: model, Messages: messages, Tools: tools, Stream: false}
}
