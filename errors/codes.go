package errors

// ErrorCode identifies an application error category in API responses.
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_INSUFFICIENT_DATA
	ErrorCode_EMPTY_TRANSCRIPT
	ErrorCode_EMPTY_RESUME
	ErrorCode_FEATURE_EXTRACTION_FAILED
	ErrorCode_MODEL_NOT_READY
	ErrorCode_TRANSCRIPTION_FAILED
	ErrorCode_EMBEDDING_FAILED
	ErrorCode_UNSUPPORTED_MEDIA
	ErrorCode_INTEGRATION_STORAGE_FAILED
	ErrorCode_DB_QUERY_FAILED
	ErrorCode_REPORT_GENERATION_FAILED
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                    "UNKNOWN",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_INSUFFICIENT_DATA:          "INSUFFICIENT_DATA",
	ErrorCode_EMPTY_TRANSCRIPT:           "EMPTY_TRANSCRIPT",
	ErrorCode_EMPTY_RESUME:               "EMPTY_RESUME",
	ErrorCode_FEATURE_EXTRACTION_FAILED:  "FEATURE_EXTRACTION_FAILED",
	ErrorCode_MODEL_NOT_READY:            "MODEL_NOT_READY",
	ErrorCode_TRANSCRIPTION_FAILED:       "TRANSCRIPTION_FAILED",
	ErrorCode_EMBEDDING_FAILED:           "EMBEDDING_FAILED",
	ErrorCode_UNSUPPORTED_MEDIA:          "UNSUPPORTED_MEDIA",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
	ErrorCode_REPORT_GENERATION_FAILED:   "REPORT_GENERATION_FAILED",
}

// String returns the stable name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
