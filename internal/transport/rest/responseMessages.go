package rest

const (
	unexpectedErrMsg string = "Unexpected error"
	livenessMsg      string = "OK"
	notFoundMsg      string = "Not Found"
)
