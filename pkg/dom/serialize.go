package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// SerializeConfig configures OuterHTML output.
type SerializeConfig struct {
	// Pretty enables indented output, one node per line.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// OuterHTML serializes n compactly.
func OuterHTML(n Node) string {
	return OuterHTMLWith(n, SerializeConfig{})
}

// OuterHTMLWith serializes n with the given configuration.
func OuterHTMLWith(n Node, config SerializeConfig) string {
	var buf bytes.Buffer
	// bytes.Buffer writes never fail
	_ = WriteHTML(&buf, n, config)
	return buf.String()
}

// WriteHTML streams the serialization of n to w.
func WriteHTML(w io.Writer, n Node, config SerializeConfig) error {
	if config.Indent == "" {
		config.Indent = "  "
	}
	s := &serializer{w: w, config: config}
	return s.node(n, 0)
}

type serializer struct {
	w      io.Writer
	config SerializeConfig
}

func (s *serializer) node(n Node, depth int) error {
	switch v := n.(type) {
	case nil:
		return nil
	case *Text:
		if s.config.Pretty {
			if strings.TrimSpace(v.data) == "" {
				return nil
			}
			s.indent(depth)
		}
		if _, err := io.WriteString(s.w, escapeHTML(v.data)); err != nil {
			return err
		}
		if s.config.Pretty {
			_, err := io.WriteString(s.w, "\n")
			return err
		}
		return nil
	case *Element:
		return s.element(v, depth)
	default:
		return fmt.Errorf("unknown node type: %T", n)
	}
}

func (s *serializer) element(e *Element, depth int) error {
	if s.config.Pretty {
		s.indent(depth)
	}
	if _, err := io.WriteString(s.w, "<"+e.tag); err != nil {
		return err
	}
	for _, a := range e.attrs {
		if _, err := fmt.Fprintf(s.w, ` %s="%s"`, a.Name, escapeAttr(a.Value)); err != nil {
			return err
		}
	}

	if e.ns == HTMLNamespace && IsVoidElement(e.tag) {
		if _, err := io.WriteString(s.w, ">"); err != nil {
			return err
		}
		return s.newline()
	}
	if _, err := io.WriteString(s.w, ">"); err != nil {
		return err
	}
	if len(e.children) > 0 {
		if err := s.newline(); err != nil {
			return err
		}
		for _, c := range e.children {
			if err := s.node(c, depth+1); err != nil {
				return err
			}
		}
		if s.config.Pretty {
			s.indent(depth)
		}
	}
	if _, err := fmt.Fprintf(s.w, "</%s>", e.tag); err != nil {
		return err
	}
	return s.newline()
}

func (s *serializer) newline() error {
	if !s.config.Pretty {
		return nil
	}
	_, err := io.WriteString(s.w, "\n")
	return err
}

func (s *serializer) indent(depth int) {
	io.WriteString(s.w, strings.Repeat(s.config.Indent, depth))
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for inclusion in a double quoted attribute value.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
