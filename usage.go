package flume

// Usage tracks token consumption as reported by the endpoint.
// Streaming invocations do not report usage; it is populated only on the
// synchronous path. TotalTokens is taken from the response rather than
// derived, since some containers bill tokens the two fields don't cover.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
