package services

// ValidationError reports a rejected input field. It is always raised
// before any storage or repository side effect has happened.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UploadTransportError marks an upload that failed the transport's own
// integrity check (an unreadable or truncated multipart part). It
// aborts the operation before any storage or database write.
type UploadTransportError struct {
	Err error
}

func (e *UploadTransportError) Error() string {
	return "failed to upload attachment: " + e.Err.Error()
}

func (e *UploadTransportError) Unwrap() error {
	return e.Err
}
