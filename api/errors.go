package api

// ErrorCode defines error types for configuration extraction and merging
type ErrorCode string

const (
	// ErrFetch represents a failure resolving or reaching a configuration source
	ErrFetch ErrorCode = "FetchError"

	// ErrSchema represents a parsed structure lacking any recognized
	// configuration key, or a document with no configuration present
	ErrSchema ErrorCode = "SchemaError"

	// ErrParse represents configuration-like text that no extraction
	// strategy could turn into valid structured data
	ErrParse ErrorCode = "ParseError"

	// ErrServerNotFound represents a named server absent from an otherwise
	// valid registry
	ErrServerNotFound ErrorCode = "ServerNotFound"

	// ErrPersistence represents a configuration store that could not be
	// read or written
	ErrPersistence ErrorCode = "PersistenceError"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
