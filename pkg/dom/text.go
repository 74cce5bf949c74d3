package dom

// Text is a text leaf. It has no attributes and no children.
type Text string

// Attribute always reports a miss; text leaves carry no attributes.
func (Text) Attribute(int) (KeyValue, bool) {
	return KeyValue{}, false
}

// ProcessChildren is a no-op; text leaves have no children.
func (Text) ProcessChildren(ProcessFunc) error {
	return nil
}

// Value returns the text payload.
func (t Text) Value() Value {
	return TextValue(string(t))
}

// ProcessAll dispatches the leaf itself as a singleton collection.
func (t Text) ProcessAll(fn ProcessFunc) error {
	return fn(t)
}
