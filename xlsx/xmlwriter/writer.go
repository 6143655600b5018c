// Package xmlwriter produces XML parts byte for byte the way Excel writes them.
package xmlwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

const declaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Attr is a single attribute. Value is escaped on output, Key is not.
type Attr struct {
	Key   string
	Value string
}

// A creates string attribute.
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// AInt creates integer attribute.
func AInt(key string, value int) Attr {
	return Attr{Key: key, Value: strconv.Itoa(value)}
}

// Writer accumulates single XML part in pooled memory buffer. Writer is not
// safe for concurrent use, every part being serialized should own one.
type Writer struct {
	buf *bytebufferpool.ByteBuffer
}

// New returns writer with buffer taken from the pool. Call Release when
// writer is no longer needed.
func New() *Writer {
	return &Writer{buf: bytebufferpool.Get()}
}

// Release returns buffer to the pool. Writer cannot be used afterwards.
func (w *Writer) Release() {
	if w.buf != nil {
		bytebufferpool.Put(w.buf)
		w.buf = nil
	}
}

// Reset clears accumulated content keeping allocated memory.
func (w *Writer) Reset() {
	w.buf.Reset()
}

// Bytes returns accumulated content. It is only valid until next write or
// Reset.
func (w *Writer) Bytes() []byte {
	return w.buf.B
}

func (w *Writer) String() string {
	return w.buf.String()
}

func (w *Writer) Len() int {
	return w.buf.Len()
}

// WriteTo flushes accumulated content to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	n, err := w.buf.WriteTo(dst)
	if err != nil {
		return n, fmt.Errorf("unable to write xml content: %w", err)
	}
	return n, nil
}

// Declaration writes standard XML prolog.
func (w *Writer) Declaration() {
	w.buf.WriteString(declaration)
}

// StartTag writes opening tag.
func (w *Writer) StartTag(name string, attrs ...Attr) {
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	w.attributes(attrs)
	w.buf.WriteByte('>')
}

// EndTag writes closing tag.
func (w *Writer) EndTag(name string) {
	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteByte('>')
}

// EmptyTag writes self-closing tag.
func (w *Writer) EmptyTag(name string, attrs ...Attr) {
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	w.attributes(attrs)
	w.buf.WriteString("/>")
}

// DataElement writes element with escaped text content.
func (w *Writer) DataElement(name, text string, attrs ...Attr) {
	w.StartTag(name, attrs...)
	w.buf.WriteString(EscapeData(text))
	w.EndTag(name)
}

// SharedStringElement writes <si> entry of shared strings table.
func (w *Writer) SharedStringElement(text string, preserve bool) {
	if preserve {
		w.buf.WriteString(`<si><t xml:space="preserve">`)
	} else {
		w.buf.WriteString("<si><t>")
	}
	w.buf.WriteString(EscapeData(EscapeEscapes(text)))
	w.buf.WriteString("</t></si>")
}

// RichSharedStringElement wraps already prepared rich string runs into <si>.
func (w *Writer) RichSharedStringElement(runs string) {
	w.buf.WriteString("<si>")
	w.buf.WriteString(runs)
	w.buf.WriteString("</si>")
}

// Raw writes s as is, used for parts which are stored verbatim.
func (w *Writer) Raw(s string) {
	w.buf.WriteString(s)
}

func (w *Writer) attributes(attrs []Attr) {
	for _, a := range attrs {
		w.buf.WriteByte(' ')
		w.buf.WriteString(a.Key)
		w.buf.WriteString(`="`)
		w.buf.WriteString(EscapeAttributes(a.Value))
		w.buf.WriteByte('"')
	}
}
