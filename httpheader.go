// package httpheader provides typed values for HTTP header fields on
// top of the standard net/http header map. a typed header implements
// the Header capability set (name, parse, format, equality, cloning)
// and is stored in or read from a Fields collection by its canonical
// field name:
//
//	ra, _ := httpheader.NewDelay(300 * time.Second)
//	f := httpheader.WrapFields(w.Header())
//	f.Set(ra) // Retry-After: 300
package httpheader

import (
	"github.com/frankli0324/go-httpheader/internal"
)

type Header = internal.Header
type Fields = internal.Fields
type ParseError = internal.ParseError

var ErrNotPresent = internal.ErrNotPresent

var NewFields = internal.NewFields
var WrapFields = internal.WrapFields
