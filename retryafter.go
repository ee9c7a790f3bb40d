package httpheader

import (
	"github.com/frankli0324/go-httpheader/internal"
)

// RetryAfter is the Retry-After response header, RFC 7231 section
// 7.1.3: either a delay in whole seconds or an absolute HTTP-date.
type RetryAfter = internal.RetryAfter

const RetryAfterName = internal.RetryAfterName

var NewDelay = internal.NewDelay
var NewDate = internal.NewDate
var ParseRetryAfter = internal.ParseRetryAfter
