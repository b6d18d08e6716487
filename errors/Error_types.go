package errors

var (
	ErrUnknown           = New(ERR_UNKNOWN, "unknown error")
	ErrInvalidArgument   = New(ERR_INVALID_ARGUMENT, "invalid argument")
	ErrProcessing        = New(ERR_PROCESSING, "error processing")
	ErrConfiguration     = New(ERR_CONFIGURATION, "configuration error")
	ErrError             = New(ERR_ERROR, "generic error")
	ErrInsufficientBytes = New(ERR_INSUFFICIENT_BYTES, "insufficient bytes")
	ErrInvalidEncoding   = New(ERR_INVALID_ENCODING, "invalid encoding")
	ErrInvalidText       = New(ERR_INVALID_TEXT, "invalid text")
)

// errors initialization functions

func NewUnknownError(message string, params ...interface{}) error {
	return New(ERR_UNKNOWN, message, params...)
}
func NewInvalidArgumentError(message string, params ...interface{}) error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}
func NewProcessingError(message string, params ...interface{}) error {
	return New(ERR_PROCESSING, message, params...)
}
func NewConfigurationError(message string, params ...interface{}) error {
	return New(ERR_CONFIGURATION, message, params...)
}
func NewError(message string, params ...interface{}) error {
	return New(ERR_ERROR, message, params...)
}
func NewInvalidEncodingError(message string, params ...interface{}) error {
	return New(ERR_INVALID_ENCODING, message, params...)
}
func NewInvalidTextError(message string, params ...interface{}) error {
	return New(ERR_INVALID_TEXT, message, params...)
}

// NewInsufficientBytesError reports a read of needed bytes from a view holding only available bytes.
// The counts are attached as ShortReadErrData.
func NewInsufficientBytesError(needed, available int, message string, params ...interface{}) error {
	return New(ERR_INSUFFICIENT_BYTES, message, params...).WithData(&ShortReadErrData{
		Needed:    needed,
		Available: available,
	})
}
