package simplexml

import (
	"fmt"
	"strconv"

	"github.com/shabbyrobe/xmlwriter"
)

// Attr is the attribute type accepted by Attributed. It is the underlying
// writer's attribute struct; values are written in slice order and the
// fluent converters (Attr{Name: "n"}.Int(5), etc) are available on it.
type Attr = xmlwriter.Attr

// Content is the value a Tag call places inside the tag it writes. It is a
// closed set: the empty content, a scalar, an attributed wrapper around
// another Content, or a nested builder. A nil Content behaves like Empty().
type Content interface {
	truthy() bool
}

type scalar struct {
	text string

	// zero marks the scalar forms that degrade to an empty tag: the empty
	// string and numeric zero.
	zero bool
}

func (s scalar) truthy() bool { return !s.zero }

type empty struct{}

func (empty) truthy() bool { return false }

type nested func() error

func (n nested) truthy() bool { return n != nil }

type attributed struct {
	attrs []Attr
	inner Content
}

// An attribute record is a value in its own right regardless of what it
// wraps, so TagIf always acts on it.
func (attributed) truthy() bool { return true }

// Empty returns content that renders its tag self-closing: <t/>. Omitting
// the content argument to Tag entirely means the same thing.
func Empty() Content { return empty{} }

// Text returns scalar content. The string is escaped when written. An empty
// string renders the tag self-closing and is skipped by TagIf.
func Text(text string) Content {
	return scalar{text: text, zero: text == ""}
}

// Textf returns scalar content from a format string. If the formatted result
// is empty it behaves like Text("").
func Textf(format string, v ...interface{}) Content {
	return Text(fmt.Sprintf(format, v...))
}

// Int returns scalar content carrying the decimal form of v. Zero is the
// empty form: Tag renders <t/> and TagIf skips the tag. To write a literal
// "0" element, use Text("0").
func Int(v int) Content {
	return scalar{text: strconv.Itoa(v), zero: v == 0}
}

// Int64 is Int for int64 values.
func Int64(v int64) Content {
	return scalar{text: strconv.FormatInt(v, 10), zero: v == 0}
}

// Uint64 is Int for uint64 values.
func Uint64(v uint64) Content {
	return scalar{text: strconv.FormatUint(v, 10), zero: v == 0}
}

// Float64 returns scalar content carrying the shortest decimal form of v.
// Zero is the empty form, as with Int.
func Float64(v float64) Content {
	return scalar{text: strconv.FormatFloat(v, 'g', -1, 64), zero: v == 0}
}

// Nested returns content that opens the tag, invokes build, then closes the
// tag. The builder takes no arguments; its body issues further Tag calls
// against the same Writer, which nest correctly because the underlying
// writer keeps the open-tag stack. A tag with Nested content is always
// written with a full closing tag, even when build writes nothing.
//
// A nil build behaves like Empty().
func Nested(build func() error) Content { return nested(build) }

// Attributed wraps inner content with an ordered attribute list. Attribute
// order is preserved verbatim in the output. The inner content may be any
// other Content kind, or nil for an empty tag that still carries attributes;
// it may not be another Attributed value.
func Attributed(attrs []Attr, inner Content) Content {
	return attributed{attrs: attrs, inner: inner}
}
