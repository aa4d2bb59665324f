package api

import (
	"encoding/json"

	"github.com/morikuni/failure/v2"
)

// Result is the outcome of an extraction as returned to external callers.
// It marshals to exactly one of two mutually exclusive JSON shapes:
// {"mcpServers": {...}} on success or {"error": "..."} on failure.
type Result struct {
	Servers Registry
	Err     error
}

// NewResult wraps a registry or an error as a Result
func NewResult(reg Registry, err error) Result {
	if err != nil {
		return Result{Err: err}
	}
	return Result{Servers: reg}
}

// OK reports whether the result carries a registry
func (r Result) OK() bool {
	return r.Err == nil
}

// ErrorMessage returns the human-readable failure reason, preferring the
// attached failure message over the raw error chain
func (r Result) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	if msg := failure.MessageOf(r.Err); msg != "" {
		return msg.String()
	}
	return r.Err.Error()
}

// MarshalJSON implements json.Marshaler
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Err != nil {
		return json.Marshal(map[string]string{"error": r.ErrorMessage()})
	}
	return json.Marshal(Config{MCPServers: r.Servers})
}

// PrettyJSON renders the result with 4-space indentation for human readers
func (r Result) PrettyJSON() (string, error) {
	b, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return "", failure.Wrap(err)
	}
	return string(b), nil
}
