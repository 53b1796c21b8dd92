package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// objectWriter builds a JSON object whose keys keep the order they are
// appended in, so the snapshot document stays diffable run to run. The first
// error sticks and surfaces from MarshalJSON; the zero value is ready to use.
type objectWriter struct {
	buf bytes.Buffer
	err error
}

// Append writes one key and its json.Marshal rendering.
func (w *objectWriter) Append(key string, value any) *objectWriter {
	if w.err != nil {
		return w
	}
	data, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("key %q: %w", key, err)
		return w
	}
	w.buf.WriteString(strconv.Quote(key))
	w.buf.WriteByte(':')
	w.buf.Write(data)
	w.buf.WriteByte(',')
	return w
}

// Optional appends the key only when the value is not its type's zero value,
// keeping empty optional fields out of the document.
func (w *objectWriter) Optional(key string, value any) *objectWriter {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// EmbedFrom marshals v, which must render as a JSON object, and splices its
// fields into the object under construction. This is how a concrete type
// prefixes the fields of an embedded base.
func (w *objectWriter) EmbedFrom(v any) *objectWriter {
	if w.err != nil {
		return w
	}
	data, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("embedding %T: %w", v, err)
		return w
	}
	data = bytes.TrimSpace(data)
	if len(data) < 2 || data[0] != '{' || data[len(data)-1] != '}' {
		w.err = fmt.Errorf("embedding %T: not a JSON object", v)
		return w
	}
	if inner := data[1 : len(data)-1]; len(inner) > 0 {
		w.buf.Write(inner)
		w.buf.WriteByte(',')
	}
	return w
}

// MarshalJSON closes the object and returns it, or the first error any
// earlier call left behind.
func (w *objectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	inner := bytes.TrimSuffix(w.buf.Bytes(), []byte{','})
	out := make([]byte, 0, len(inner)+2)
	out = append(out, '{')
	out = append(out, inner...)
	return append(out, '}'), nil
}
