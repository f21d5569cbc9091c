package simplexml

import (
	"bytes"
	"io"
)

const prolog = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

type DodgyWriter struct {
	writer     io.Writer
	shouldFail func(b []byte) (fail bool, len int, err error)
}

func (d *DodgyWriter) Write(b []byte) (len int, err error) {
	if fail, len, err := d.shouldFail(b); fail {
		return len, err
	}
	return d.writer.Write(b)
}

func open(o ...Option) (*bytes.Buffer, *Writer) {
	b := &bytes.Buffer{}
	w, err := Open(b, o...)
	must(err)
	return b, w
}

func openNull(o ...Option) *Writer {
	w, err := Open(io.Discard, o...)
	must(err)
	return w
}

func str(b *bytes.Buffer, w *Writer) string {
	must(w.Flush())
	return b.String()
}
