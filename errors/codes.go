package errors

// ErrorCode identifies a class of application error
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 200

	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	ErrorCode_MISSING_AUDIO         ErrorCode = 2000
	ErrorCode_EMPTY_TRANSCRIPT      ErrorCode = 2001
	ErrorCode_MINUTES_NOT_GENERATED ErrorCode = 2002
	ErrorCode_EXPORT_NOT_FOUND      ErrorCode = 2003
	ErrorCode_EXPORT_FAILED         ErrorCode = 2004
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:               "HTTP_OK",
	ErrorCode_INTERNAL:              "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:      "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:             "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:       "INVALID_PAYLOAD",
	ErrorCode_MISSING_AUDIO:         "MISSING_AUDIO",
	ErrorCode_EMPTY_TRANSCRIPT:      "EMPTY_TRANSCRIPT",
	ErrorCode_MINUTES_NOT_GENERATED: "MINUTES_NOT_GENERATED",
	ErrorCode_EXPORT_NOT_FOUND:      "EXPORT_NOT_FOUND",
	ErrorCode_EXPORT_FAILED:         "EXPORT_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
