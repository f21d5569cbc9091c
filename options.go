package simplexml

import (
	"github.com/shabbyrobe/xmlwriter"
	"golang.org/x/text/encoding"
)

// Option configures a Writer at construction time.
type Option func(c *config)

type config struct {
	encName    string
	encoder    *encoding.Encoder
	version    string
	standalone *bool
	xwOptions  []xmlwriter.Option
}

func newConfig(options ...Option) *config {
	c := &config{encName: "UTF-8"}
	for _, o := range options {
		o(c)
	}
	return c
}

// WithEncoding makes the Writer emit the document in the named encoding
// using an encoder from the golang.org/x/text/encoding package. Strings
// passed to the Writer stay UTF-8; they are converted on the fly and the
// declaration names the target encoding:
//
//	w, err := simplexml.Open(b, simplexml.WithEncoding("windows-1252",
//		charmap.Windows1252.NewEncoder()))
//
// Passing a name that equals "utf-8" (in any case) selects the plain UTF-8
// path and the encoder is ignored.
func WithEncoding(name string, encoder *encoding.Encoder) Option {
	return func(c *config) {
		c.encName = name
		c.encoder = encoder
	}
}

// WithIndent makes the Writer indent elements with the underlying writer's
// standard indenter:
//
//	w, err := simplexml.Open(b, simplexml.WithIndent())
func WithIndent() Option {
	return func(c *config) {
		c.xwOptions = append(c.xwOptions, xmlwriter.WithIndent())
	}
}

// WithIndentString is WithIndent with a specific indent string:
//
//	w, err := simplexml.Open(b, simplexml.WithIndentString("    "))
func WithIndentString(indent string) Option {
	return func(c *config) {
		c.xwOptions = append(c.xwOptions, xmlwriter.WithIndentString(indent))
	}
}

// WithWriterOptions passes options through to the underlying
// xmlwriter.Writer verbatim, for anything this package has no wrapper for.
func WithWriterOptions(options ...xmlwriter.Option) Option {
	return func(c *config) {
		c.xwOptions = append(c.xwOptions, options...)
	}
}

// WithVersion overrides the version="..." value in the XML declaration.
// The default is 1.0.
func WithVersion(version string) Option {
	return func(c *config) {
		c.version = version
	}
}

// WithStandalone adds standalone="yes" or standalone="no" to the XML
// declaration, which is otherwise omitted.
func WithStandalone(standalone bool) Option {
	return func(c *config) {
		c.standalone = &standalone
	}
}
