package html

import "fmt"

// XmlnsError is returned by AddAttribute when an xmlns attribute is seen
// under the Fatal policy.
type XmlnsError struct {
	Name string
	Line int
}

func (e *XmlnsError) Error() string {
	return fmt.Sprintf("line %d: saw an xmlns attribute %q", e.Line, e.Name)
}

// NameError is returned by ProcessNonNCNames under the Fatal policy.
type NameError struct {
	Name string
	Line int
}

func (e *NameError) Error() string {
	return fmt.Sprintf("line %d: attribute %q is not serializable as XML 1.0", e.Line, e.Name)
}
