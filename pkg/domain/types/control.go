package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ControlRef represents a framework control reference such as
// "ISO27001:A.8.2.3" or "NISTCSF:PR.DS-1". The token is kept opaque;
// no registry of known frameworks exists.
type ControlRef string

// Validate checks if the ControlRef is valid
func (c ControlRef) Validate() error {
	if c == "" {
		return goerr.New("control reference cannot be empty")
	}
	if strings.ContainsAny(string(c), ";\n") {
		return goerr.New("control reference must be a single token", goerr.V("control", c))
	}
	return nil
}

// Framework returns the framework prefix of the reference, or the whole
// token when no "Framework:ControlID" separator is present.
func (c ControlRef) Framework() string {
	if idx := strings.Index(string(c), ":"); idx >= 0 {
		return string(c[:idx])
	}
	return string(c)
}

// String returns the string representation of ControlRef
func (c ControlRef) String() string {
	return string(c)
}

// ParseControlList splits a ";"-separated list of control references,
// trimming whitespace and dropping empty tokens.
func ParseControlList(s string) []ControlRef {
	var refs []ControlRef
	for _, token := range strings.Split(s, ";") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		refs = append(refs, ControlRef(token))
	}
	return refs
}
