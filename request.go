package flume

// Request carries model selection and generation parameters.
// The provider uses its own defaults when fields are zero/nil.
//
// Generation parameters are forwarded to the endpoint verbatim: no range
// checks are applied locally, so out-of-range values surface as service
// errors rather than client-side validation failures.
type Request struct {
	Model       string // model ID, endpoint-specific; empty = provider default
	Messages    []Message
	MaxTokens   int      // 0 = provider default
	Temperature *float64 // nil = provider default
	TopP        *float64 // nil = provider default
}
