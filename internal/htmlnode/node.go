// Package htmlnode models rendered HTML as a small typed tree.
//
// A tree is built from two node variants:
//   - Leaf holds raw text (no tag) or a single-content element such as
//     <b>, <code>, <a> or <img>.
//   - Parent holds an ordered, non-empty list of children under one tag.
//
// Node is a sealed interface: only this package can add variants, and
// Render dispatches over them with an exhaustive type switch.
package htmlnode

import "errors"

// ErrStructural indicates a node that cannot be rendered: a Leaf without a
// value, or a Parent without a tag or children.
var ErrStructural = errors.New("invalid node structure")

// Node is a sealed interface over Leaf and Parent.
// The unexported marker method prevents external implementations.
type Node interface {
	isNode()
}

// Attribute is a single key/value pair rendered as key="value".
type Attribute struct {
	Key   string
	Value string
}

// Attributes is an ordered attribute list. Render order is slice order.
type Attributes []Attribute

// Attr builds an Attribute.
func Attr(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Get returns the value of the first attribute named key.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Set replaces the value of key in place, or appends it when absent.
func (a *Attributes) Set(key, value string) {
	for i := range *a {
		if (*a)[i].Key == key {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attribute{Key: key, Value: value})
}

// Leaf is raw text when Tag is empty, otherwise a single-content element.
// A nil Value means the value was never set and fails validation; the empty
// string is a valid value (used by <img>).
type Leaf struct {
	Tag   string
	Value *string
	Attrs Attributes
}

func (*Leaf) isNode() {}

// Parent is a block-level or wrapping element with ordered children.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    Attributes
}

func (*Parent) isNode() {}

// Text returns an untagged Leaf rendered verbatim.
func Text(value string) *Leaf {
	return &Leaf{Value: &value}
}

// NewLeaf returns a Leaf with the given tag, value, and attributes.
func NewLeaf(tag, value string, attrs ...Attribute) *Leaf {
	return &Leaf{Tag: tag, Value: &value, Attrs: attrs}
}

// NewParent returns a Parent with the given tag, children, and attributes.
func NewParent(tag string, children []Node, attrs ...Attribute) *Parent {
	return &Parent{Tag: tag, Children: children, Attrs: attrs}
}

// Append adds children in order.
func (p *Parent) Append(children ...Node) {
	p.Children = append(p.Children, children...)
}
