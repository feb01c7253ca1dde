// Package html holds the per-tag attribute collection and the policies that
// govern markup which HTML accepts but XML 1.0 cannot represent.
package html

import (
	"fmt"

	"github.com/pkg/errors"
)

// Policy decides what happens when input is valid HTML but not
// serializable as XML.
type Policy int

const (
	// Allow keeps the input as is and reports a warning.
	Allow Policy = iota
	// AlterInfoset rewrites the offending construct so the output is
	// representable.
	AlterInfoset
	// Fatal stops processing with an error.
	Fatal
)

func (p Policy) String() string {
	switch p {
	case Allow:
		return "allow"
	case AlterInfoset:
		return "alter-infoset"
	case Fatal:
		return "fatal"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps the String form back to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "allow":
		return Allow, nil
	case "alter-infoset":
		return AlterInfoset, nil
	case "fatal":
		return Fatal, nil
	}
	return Allow, errors.Errorf("unknown policy %q", s)
}
