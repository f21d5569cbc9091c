/*
Package simplexml writes well-formed XML documents with one call per tag.

It is a thin layer over github.com/shabbyrobe/xmlwriter, which does all of
the real work: escaping, attribute quoting, the open-tag stack, buffering
and encoding. simplexml adds a single idea on top - Tag, which takes a tag
name and one content value and figures out whether to write a self-closing
tag, a text element, or an open/close pair around nested tags.

Creating

A Writer binds to any io.Writer and starts the document immediately: the
XML declaration is written before the first Tag call can happen.

	b := &bytes.Buffer{}
	w, err := simplexml.Open(b)

Create does the same bound to a file it opens (and will close) itself:

	w, err := simplexml.Create("out.xml")

Options use the functional options pattern, like the underlying writer:

	w, err := simplexml.Open(b, simplexml.WithIndent())

Provided options are:
  - WithEncoding(name, encoder)
  - WithIndent()
  - WithIndentString(string)
  - WithWriterOptions(...xmlwriter.Option)
  - WithVersion(string)
  - WithStandalone(bool)

Content

Tag's content argument is one of a closed set of kinds. Omitted content (or
nil, or Empty()) writes a self-closing tag. Scalars - Text, Textf, Int,
Int64, Uint64, Float64 - write a text element, except in their zero forms
(empty string, numeric zero), which degrade to a self-closing tag. Nested
wraps a builder function that writes the tag's children. Attributed carries
an ordered attribute list along with any of the other kinds:

	w.Tag("tag1")
	w.Tag("example3", simplexml.Attributed(
		[]simplexml.Attr{{Name: "id", Value: "ex3"}},
		simplexml.Text("text z")))
	w.Tag("example2", simplexml.Nested(func() error {
		if err := w.Tag("a", simplexml.Int(100)); err != nil {
			return err
		}
		return w.Tag("b", simplexml.Int(101))
	}))

produces

	<tag1/>
	<example3 id="ex3">text z</example3>
	<example2><a>100</a><b>101</b></example2>

Builders run synchronously inside the Tag call, against the same Writer, so
nesting can go as deep as the document needs. TagIf writes the tag only when
its content is truthy, which makes optional fields one-liners:

	w.TagIf("nickname", simplexml.Text(user.Nickname))

Errors

Every call returns an error and the errors are almost all the underlying
writer's own; simplexml performs no validation of names or text beyond what
it inherits. For procedural assembly of larger documents the underlying
package's ErrCollector cuts the boilerplate down, and works unchanged with
simplexml's methods:

	ec := &xmlwriter.ErrCollector{}
	defer ec.Set(&err)
	ec.Do(
		w.Tag("a", simplexml.Int(100)),
		w.Tag("b", simplexml.Int(101)),
	)

Teardown

A Writer must be closed: Close ends any tags still open, flushes the
buffer, and closes the file if Create opened one. Close is idempotent, so a
deferred Close alongside an explicit one is fine. The scoped forms
WriteDocument and WriteFile bracket a build function with exactly one
guaranteed Close:

	err := simplexml.WriteFile("out.xml", func(w *simplexml.Writer) error {
		return w.Tag("root", simplexml.Nested(func() error {
			return w.Tag("greeting", simplexml.Text("hello"))
		}))
	})

Even when the build function fails partway, the document's open tags are
closed and the stream is flushed and released exactly once.

Encodings

The default encoding is UTF-8. WithEncoding accepts any encoder from
golang.org/x/text/encoding; strings stay UTF-8 in your code and are
converted as they are written, with the declaration naming the target:

	enc := charmap.Windows1252.NewEncoder()
	w, err := simplexml.Open(b, simplexml.WithEncoding("windows-1252", enc))

The document line will look like this:

	<?xml version="1.0" encoding="windows-1252"?>
*/
package simplexml
