package contextkeys

// RequestId is the context key carrying the per-request correlation id.
type RequestId struct{}
