package util

type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}

// FieldErrors wraps per-field validation messages, keyed by field name.
func FieldErrors(fields map[string]string) Envelope {
	return Envelope{"errors": fields}
}
