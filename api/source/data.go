package source

import "time"

// Reference identifies a configuration source before it has been resolved
type Reference struct {
	// Kind is the detected source kind
	Kind Kind

	// Value is the raw user input: a URL, path, shorthand, or literal JSON
	Value string
}

// NewReference classifies input and wraps it as a Reference
func NewReference(input string) Reference {
	return Reference{
		Kind:  DetectKind(input),
		Value: input,
	}
}

// Document is the resolved text of a configuration source
type Document struct {
	// Ref is the reference this document was resolved from
	Ref Reference

	// Text is the UTF-8 document body handed to the extraction engine
	Text string

	// ResolvedURL is the concrete URL the text was fetched from, if any
	ResolvedURL string

	// FetchedAt is the time when the document was retrieved
	FetchedAt time.Time
}
