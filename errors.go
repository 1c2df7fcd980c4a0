package p2

import "fmt"

// ErrNonFinite is returned by Add for NaN and infinite samples, which would
// break the ordering of the marker heights.
const ErrNonFinite = Error("sample must be a finite number")

// Error is a domain error returned by the estimator.
type Error string

func (e Error) Error() string {
	return string(e)
}

// contractf panics on API misuse. Misuse is a programming error, never a
// runtime condition the caller can recover from.
func contractf(format string, args ...interface{}) {
	panic(fmt.Sprintf("p2: "+format, args...))
}
