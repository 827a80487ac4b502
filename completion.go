package flume

// Completion is the result of a synchronous (non-streaming) invocation.
type Completion struct {
	Text         string
	FinishReason string // raw endpoint value, e.g. "stop", "length"
	Usage        Usage
}
