package cli

import (
	"github.com/spf13/pflag"
)

// configPathFlag tracks whether the store path was set explicitly so that
// commands can tell a default apart from a user choice
type configPathFlag struct {
	IsSet bool
	Value string
}

// String implements pflag.Value.
func (s *configPathFlag) String() string {
	return s.Value
}

func (s *configPathFlag) Set(value string) error {
	s.Value = value
	s.IsSet = true
	return nil
}

func (s *configPathFlag) Type() string {
	return "path"
}

var _ pflag.Value = &configPathFlag{}
