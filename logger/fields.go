package logger

// Standard field key constants for structured logging.
const (
	FieldComponent   = "component"
	FieldTraceID     = "trace_id"
	FieldSpanID      = "span_id"
	FieldRequestID   = "request_id"
	FieldMethod      = "method"
	FieldParams      = "params"
	FieldEvent       = "event"
	FieldReplacement = "replacement"
	FieldCallback    = "callback"
	FieldArgs        = "args"
	FieldError       = "error"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("request", logger.Fields("method", "eth_chainId", "id", 42))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// DeprecationFields creates fields for a call to a deprecated surface.
func DeprecationFields(feature, replacement string) map[string]interface{} {
	m := map[string]interface{}{FieldEvent: feature}
	if replacement != "" {
		m[FieldReplacement] = replacement
	}
	return m
}

// MergeWithError adds an error field to an existing map.
func MergeWithError(fields map[string]interface{}, err error) map[string]interface{} {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields[FieldError] = err.Error()
	return fields
}
