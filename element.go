package locrank

// Attribute is a single name/value pair declared on an element.
type Attribute struct {
	Key string
	Val string
}

// Element is a read-only view of an HTML element: its tag name and its
// attributes in declaration order.
type Element struct {
	Tag        string
	Attributes []Attribute
}

// Attr returns the value of the named attribute and whether it is present.
// An attribute declared with an empty value is present.
func (e Element) Attr(name string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is declared on the element.
func (e Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}
