package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	ContextUserKey      = "user"
	ContextRequestIDKey = "request_id"
	HeaderRequestID     = "X-Request-ID"
)
