// Package openai implements [flume.Provider] for OpenAI-compatible chat
// completion endpoints, the request/response shape exposed by most managed
// inference containers (TGI, vLLM, LMI and friends).
//
// Streaming responses arrive as newline-delimited SSE data lines whose
// chunk boundaries carry no relationship to line boundaries; the stream
// implementation reassembles them with [framing.Assembler] and emits one
// semantic event per decoded record through the pull-based [flume.Stream]
// interface.
package openai

const (
	defaultBaseURL   = "https://api.openai.com"
	defaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 512
	completionsPath  = "/v1/chat/completions"
)

// apiRequest is the JSON body sent to the chat completions endpoint.
type apiRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens"`
	Temperature *float64     `json:"temperature,omitempty"`
	TopP        *float64     `json:"top_p,omitempty"`
	Stream      bool         `json:"stream"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatChunk is one streamed record: a chat.completion.chunk object.
type chatChunk struct {
	Choices []chunkChoice `json:"choices"`
}

type chunkChoice struct {
	Delta        chunkDelta `json:"delta"`
	FinishReason *string    `json:"finish_reason"`
}

// chunkDelta tolerates an absent content field: a record with no content
// contributes an empty delta, not an error.
type chunkDelta struct {
	Content string `json:"content"`
}

// chatResponse is the body of a synchronous (non-streaming) completion.
type chatResponse struct {
	Choices []responseChoice `json:"choices"`
	Usage   apiUsage         `json:"usage"`
}

type responseChoice struct {
	Message      apiMessage `json:"message"`
	FinishReason string     `json:"finish_reason"`
}

type apiUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// apiErrorResponse is the JSON body returned on non-200 HTTP responses.
type apiErrorResponse struct {
	Error apiErrorDetail `json:"error"`
}

type apiErrorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
