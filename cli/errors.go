package cli

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	InvalidArguments  ErrorCode = "InvalidArguments"
	UnsupportedSource ErrorCode = "UnsupportedSource"
	InvalidConfigFile ErrorCode = "InvalidConfigFile"
	NoBrowserURL      ErrorCode = "NoBrowserURL"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
