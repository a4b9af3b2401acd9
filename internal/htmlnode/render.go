package htmlnode

import (
	"fmt"
	"strings"
)

// Render serializes n and its subtree to HTML.
// Leaf values and attribute values are written verbatim; callers own
// sanitization. Returns an error wrapping ErrStructural for invalid nodes.
func Render(n Node) (string, error) {
	var sb strings.Builder
	if err := render(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func render(sb *strings.Builder, n Node) error {
	switch n := n.(type) {
	case *Leaf:
		if err := validateLeaf(n); err != nil {
			return err
		}
		if n.Tag == "" {
			sb.WriteString(*n.Value)
			return nil
		}
		openTag(sb, n.Tag, n.Attrs)
		sb.WriteString(*n.Value)
		closeTag(sb, n.Tag)
		return nil
	case *Parent:
		if err := validateParent(n); err != nil {
			return err
		}
		openTag(sb, n.Tag, n.Attrs)
		for i, child := range n.Children {
			if err := render(sb, child); err != nil {
				return fmt.Errorf("<%s> child %d: %w", n.Tag, i, err)
			}
		}
		closeTag(sb, n.Tag)
		return nil
	case nil:
		return fmt.Errorf("%w: nil node", ErrStructural)
	default:
		return fmt.Errorf("%w: unknown node type %T", ErrStructural, n)
	}
}

// RenderAttributes returns ` key="value"` for each attribute in order.
// Quotes inside values are not escaped.
func RenderAttributes(attrs Attributes) string {
	var sb strings.Builder
	writeAttributes(&sb, attrs)
	return sb.String()
}

func writeAttributes(sb *strings.Builder, attrs Attributes) {
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(a.Value)
		sb.WriteByte('"')
	}
}

func openTag(sb *strings.Builder, tag string, attrs Attributes) {
	sb.WriteByte('<')
	sb.WriteString(tag)
	writeAttributes(sb, attrs)
	sb.WriteByte('>')
}

func closeTag(sb *strings.Builder, tag string) {
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
}

// Validate checks n and, for a Parent, every descendant.
func Validate(n Node) error {
	return Walk(n, func(n Node) error {
		switch n := n.(type) {
		case *Leaf:
			return validateLeaf(n)
		case *Parent:
			return validateParent(n)
		case nil:
			return fmt.Errorf("%w: nil node", ErrStructural)
		default:
			return fmt.Errorf("%w: unknown node type %T", ErrStructural, n)
		}
	})
}

func validateLeaf(l *Leaf) error {
	if l == nil {
		return fmt.Errorf("%w: nil leaf", ErrStructural)
	}
	if l.Value == nil {
		return fmt.Errorf("%w: leaf <%s> has no value", ErrStructural, l.Tag)
	}
	return nil
}

func validateParent(p *Parent) error {
	if p == nil {
		return fmt.Errorf("%w: nil parent", ErrStructural)
	}
	if p.Tag == "" {
		return fmt.Errorf("%w: parent has no tag", ErrStructural)
	}
	if len(p.Children) == 0 {
		return fmt.Errorf("%w: parent <%s> has no children", ErrStructural, p.Tag)
	}
	return nil
}

// Walk visits n and its descendants depth-first, parents before children.
// A non-nil error from fn stops the walk and is returned.
func Walk(n Node, fn func(Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	p, ok := n.(*Parent)
	if !ok || p == nil {
		return nil
	}
	for _, child := range p.Children {
		if err := Walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}
