package sourceimpl

type ErrorCode string

const (
	// ErrInvalidSource represents a source value that cannot be parsed
	ErrInvalidSource ErrorCode = "InvalidSource"

	// ErrFetchFailed represents a network or HTTP failure reaching a source
	ErrFetchFailed ErrorCode = "FetchFailed"

	// ErrReadmeNotFound represents errors when no README could be located
	// for any candidate branch of a repository
	ErrReadmeNotFound ErrorCode = "ReadmeNotFound"

	// ErrFileUnreadable represents a local file that could not be read
	ErrFileUnreadable ErrorCode = "FileUnreadable"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
