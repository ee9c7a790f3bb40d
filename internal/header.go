package internal

import (
	"errors"
	"fmt"
	"net/http"
	"net/textproto"

	"golang.org/x/net/http/httpguts"
)

// Header is the capability set a typed header value must implement to
// be stored in a Fields collection. A single concrete type per header
// suffices; Name doubles as its stable identity inside the collection.
type Header interface {
	// Name returns the canonical field name, e.g. "Retry-After".
	// the underlying http.Header map matches it case-insensitively.
	Name() string

	// ParseValue decodes a field value as it appears on the wire,
	// replacing the receiver's current value. surrounding whitespace
	// must already be stripped by the caller, see Fields.Get.
	ParseValue(raw string) error

	// FormatValue renders the preferred wire representation of the
	// current value. a validly constructed value always formats.
	FormatValue() string

	// Equal reports whether other is the same header type carrying
	// an equal value.
	Equal(other Header) bool

	// Clone returns an independent copy of the value.
	Clone() Header
}

// ErrNotPresent is returned by Fields.Get when the requested field has
// no value at all, as opposed to a value that fails to decode.
var ErrNotPresent = errors.New("httpheader: header not present")

// ParseError reports a field value that could not be decoded as the
// typed header it was requested as. It keeps the original input so
// callers can log or reject the malformed field.
type ParseError struct {
	Name  string // canonical field name
	Value string // the field value as received
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("httpheader: invalid %s value %q", e.Name, e.Value)
}

// Fields is a typed view over a net/http header map. It stores and
// retrieves Header values by their canonical name, leaving the raw map
// usable by the host library at all times.
type Fields struct {
	raw http.Header
}

// NewFields returns a Fields over a fresh header map.
func NewFields() *Fields {
	return &Fields{raw: http.Header{}}
}

// WrapFields returns a Fields sharing h. mutations through the returned
// collection are visible to h and vice versa.
func WrapFields(h http.Header) *Fields {
	if h == nil {
		h = http.Header{}
	}
	return &Fields{raw: h}
}

// Set formats h and stores the result under its canonical name,
// replacing any values already present for that field. values that are
// not valid field content per RFC 7230 are refused rather than written.
func (f *Fields) Set(h Header) error {
	v := h.FormatValue()
	if !httpguts.ValidHeaderFieldValue(v) {
		return fmt.Errorf("httpheader: %s: invalid field value %q", h.Name(), v)
	}
	f.raw.Set(h.Name(), v)
	return nil
}

// Get decodes the field named h.Name() into h. It returns ErrNotPresent
// when the field is absent, or the typed header's parse error when the
// value cannot be decoded. optional whitespace around the raw value is
// stripped here, so ParseValue sees the bare field content.
//
// Retry-After is a singleton field, so only the first value is
// considered when several are present.
func (f *Fields) Get(h Header) error {
	vs := f.raw.Values(h.Name())
	if len(vs) == 0 {
		return ErrNotPresent
	}
	return h.ParseValue(textproto.TrimString(vs[0]))
}

// Has reports whether the field named h.Name() is present, without
// decoding it.
func (f *Fields) Has(h Header) bool {
	return len(f.raw.Values(h.Name())) > 0
}

// Del removes every value of the field named h.Name().
func (f *Fields) Del(h Header) {
	f.raw.Del(h.Name())
}

// Raw exposes the underlying header map, e.g. for attaching to an
// outgoing net/http response or request.
func (f *Fields) Raw() http.Header {
	return f.raw
}
