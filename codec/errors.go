package codec

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the closed error taxonomy spec'd for this codec. Every failure
// path returns one of these; there are no exceptions and no panics.
type Kind int

const (
	// InvalidPacket covers a short buffer, a malformed nibble (15 in a
	// non-terminal position), a payload marker with nothing after it, or
	// option data that overruns the buffer.
	InvalidPacket Kind = iota + 1
	InvalidVersion
	InvalidType
	InvalidTokenLength
	UnknownCode
	InsufficientBuffer
	// FoundPayloadMarker and EndOfPacket are control signals raised by the
	// option iterator, not protocol faults; see options.go.
	FoundPayloadMarker
	EndOfPacket
	InvalidPayload
	InvalidOption
	OptionsOutOfOrder
)

var kindNames = map[Kind]string{
	InvalidPacket:       "InvalidPacket",
	InvalidVersion:      "InvalidVersion",
	InvalidType:         "InvalidType",
	InvalidTokenLength:  "InvalidTokenLength",
	UnknownCode:         "UnknownCode",
	InsufficientBuffer:  "InsufficientBuffer",
	FoundPayloadMarker:  "FoundPayloadMarker",
	EndOfPacket:         "EndOfPacket",
	InvalidPayload:      "InvalidPayload",
	InvalidOption:       "InvalidOption",
	OptionsOutOfOrder:   "OptionsOutOfOrder",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error makes a Kind usable as an errors.Is target.
func (k Kind) Error() string { return k.String() }

// Error wraps a taxonomy Kind with an optional causal detail. It mirrors
// the teacher's coapError: a small value carrying a fixed classification
// plus freeform context. The cause is built with github.com/pkg/errors,
// so it records the stack where it was created and is reachable through
// Unwrap; errors.Cause does not descend into an *Error, and formatting an
// *Error (including with %+v) prints only its message.
type Error struct {
	Kind  Kind
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.cause)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.cause }

// Is lets errors.Is(err, codec.InvalidPacket) style checks work against the
// raw Kind as well as against another *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if k, ok := target.(Kind); ok {
		return e.Kind == k
	}
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}

// newErr builds a taxonomy error with no further context.
func newErr(k Kind) error {
	return &Error{Kind: k}
}

// wrapErr attaches msg as causal context to k, in the teacher's wrapError
// style (coap/errors.go), using pkg/errors so the chain keeps a stack.
func wrapErr(k Kind, msg string) error {
	return &Error{Kind: k, cause: errors.New(msg)}
}

// wrapErrf is wrapErr with fmt.Sprintf-style formatting.
func wrapErrf(k Kind, format string, args ...interface{}) error {
	return &Error{Kind: k, cause: errors.Errorf(format, args...)}
}

// KindOf extracts the taxonomy Kind from err, if any.
func KindOf(err error) (Kind, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}
