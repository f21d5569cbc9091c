package simplexml

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shabbyrobe/xmlwriter"
)

// Writer writes one XML document tag by tag. It wraps an xmlwriter.Writer,
// which owns the open-tag stack, the output buffer and all escaping; Writer
// adds only the Tag dispatch and the document lifecycle around them.
//
// A Writer is bound to a single destination for its whole life and is not
// safe for concurrent use. Callers must arrange for Close to run, usually
// with defer; WriteDocument and WriteFile do that arranging for you.
type Writer struct {
	xw     *xmlwriter.Writer
	file   io.Closer
	closed bool
}

// Open binds a Writer to w and immediately emits the XML declaration. The
// encoding defaults to UTF-8; see WithEncoding for the alternatives.
//
// Closing the Writer ends any still-open tags and flushes, but does not
// close w: what Open did not open, Close will not close.
func Open(w io.Writer, options ...Option) (*Writer, error) {
	return newWriter(w, nil, newConfig(options...))
}

// Create opens (creating or truncating) the named file and binds a Writer to
// it as Open does. The Writer owns the file handle: Close closes it after
// finishing the document.
func Create(path string, options ...Option) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w, err := newWriter(f, f, newConfig(options...))
	if err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

// WriteDocument writes one whole document to out: it opens a Writer, runs
// build, and guarantees exactly one Close whether build succeeds or not. The
// first error wins. On failure the destination holds whatever had been
// flushed; nothing is rolled back.
func WriteDocument(out io.Writer, build func(*Writer) error, options ...Option) (err error) {
	w, err := Open(out, options...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	return build(w)
}

// WriteFile is WriteDocument writing to the named file via Create.
func WriteFile(path string, build func(*Writer) error, options ...Option) (err error) {
	w, err := Create(path, options...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	return build(w)
}

func newWriter(out io.Writer, owned io.Closer, c *config) (*Writer, error) {
	var xw *xmlwriter.Writer
	if strings.EqualFold(c.encName, "utf-8") {
		xw = xmlwriter.Open(out, c.xwOptions...)
	} else {
		if c.encoder == nil {
			return nil, fmt.Errorf("simplexml: encoding %q requires an encoder", c.encName)
		}
		xw = xmlwriter.OpenEncoding(out, c.encName, c.encoder, c.xwOptions...)
	}
	if c.version != "" {
		xw.Version = c.version
	}

	doc := xmlwriter.Doc{}
	if c.standalone != nil {
		doc = doc.WithStandalone(*c.standalone)
	}
	w := &Writer{xw: xw, file: owned}
	if err := w.xw.StartDoc(doc); err != nil {
		return nil, err
	}
	return w, nil
}

// Tag writes exactly one tag named name at the writer's current position,
// which is always the end of the currently open parent element. What goes
// inside the tag is decided by the optional content value:
//
//	w.Tag("tag1")                       // <tag1/>
//	w.Tag("b", simplexml.Int(101))      // <b>101</b>
//	w.Tag("e", simplexml.Attributed(
//		[]simplexml.Attr{{Name: "id", Value: "e1"}},
//		simplexml.Text("z")))           // <e id="e1">z</e>
//	w.Tag("outer", simplexml.Nested(func() error {
//		return w.Tag("inner")
//	}))                                 // <outer><inner/></outer>
//
// An Attributed wrapper is unwrapped exactly once: its attribute list is
// collected in order and its inner content is classified again, so the inner
// value may not itself be Attributed. Scalar content in its zero form (empty
// string, numeric zero) writes a self-closing tag, as does nil or omitted
// content.
//
// Tag names and attribute names are not validated here; the underlying
// writer's errors for malformed input and stream failures propagate
// unchanged.
func (w *Writer) Tag(name string, content ...Content) error {
	switch len(content) {
	case 0:
		return w.writeTag(name, nil)
	case 1:
		return w.writeTag(name, content[0])
	default:
		return fmt.Errorf("simplexml: Tag takes at most one content value, got %d", len(content))
	}
}

// TagIf is Tag when content is truthy and does nothing otherwise. Falsy
// content is nil, Empty(), a zero scalar (empty string or numeric zero), or
// a nil nested builder. Attributed content always counts as truthy, though
// its inner value may still degrade the tag to a self-closing one.
func (w *Writer) TagIf(name string, content Content) error {
	if content == nil || !content.truthy() {
		return nil
	}
	return w.writeTag(name, content)
}

func (w *Writer) writeTag(name string, content Content) error {
	if w.closed {
		return fmt.Errorf("simplexml: writer is closed")
	}

	var attrs []Attr
	if a, ok := content.(attributed); ok {
		attrs, content = a.attrs, a.inner
		if _, again := content.(attributed); again {
			return fmt.Errorf("simplexml: attributed content may not wrap another attributed content")
		}
	}

	elem := xmlwriter.Elem{Name: name, Attrs: attrs}

	switch c := content.(type) {
	case nested:
		if c == nil {
			break
		}
		// Full keeps the closing tag explicit even if build fails partway
		// through and teardown has to finish the element.
		elem.Full = true
		if err := w.xw.StartElem(elem); err != nil {
			return err
		}
		if err := c(); err != nil {
			return err
		}
		return w.xw.EndElemFull(name)

	case scalar:
		if c.zero {
			break
		}
		return w.xw.Block(elem, xmlwriter.Text(c.text))
	}

	// Everything else - nil, Empty(), a zero scalar, a nil builder - writes
	// a self-closing tag, attributes and all.
	return w.xw.Write(elem)
}

// Comment writes an XML comment at the current position.
func (w *Writer) Comment(text string) error {
	if w.closed {
		return fmt.Errorf("simplexml: writer is closed")
	}
	return w.xw.WriteComment(xmlwriter.Comment{Content: text})
}

// Flush writes the underlying writer's buffer through to the destination.
// Close flushes too; Flush is for callers who want bytes visible mid
// document. Flushing a closed Writer does nothing.
func (w *Writer) Flush() error {
	if w.closed {
		return nil
	}
	return w.xw.Flush()
}

// Close ends every still-open tag, flushes the output, and closes the file
// handle if Create opened one. The first call does all the work and returns
// any error; later calls do nothing and return nil, so an explicit Close and
// a deferred one can coexist.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	err := w.xw.EndAllFlush()
	if w.file != nil {
		if cerr := w.file.Close(); err == nil {
			err = cerr
		}
		w.file = nil
	}
	return err
}
