// Package codec implements the CoAP (RFC 7252) wire format: parsing an
// inbound UDP datagram into its logical fields and assembling an outbound
// datagram from them. It performs no I/O and holds no state between calls;
// every routine takes the caller's buffer and returns either a parsed value
// or an error from the taxonomy in errors.go.
package codec

import "fmt"

// Version is the only CoAP version this codec accepts.
const Version uint8 = 1

// Protocol constants (RFC 7252 §3, §4, §8).
const (
	MaxMessageSize = 1460 // bytes, one UDP datagram
	MaxTokenLength = 8
	HeaderLength   = 4
	PayloadMarker  = 0xFF
	DefaultPort    = 5683
)

// Nibble escape sentinels shared by the delta and length fields of an
// option header (RFC 7252 §3.1).
const (
	extNibbleByte = 13 // read 1 more byte, value = byte + extByteAddend
	extNibbleWord = 14 // read 2 more bytes big-endian, value = word + extWordAddend
	extNibbleErr  = 15 // reserved; a format error unless it is the payload marker

	extByteAddend = 13
	extWordAddend = 269
)

// Type is the CoAP message type (RFC 7252 §3).
type Type uint8

const (
	Confirmable     Type = 0
	NonConfirmable  Type = 1
	Acknowledgement Type = 2
	Reset           Type = 3
)

var typeNames = [4]string{"Confirmable", "NonConfirmable", "Acknowledgement", "Reset"}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

func (t Type) valid() bool {
	return t <= Reset
}

// Code is the 8-bit class.detail code shared by requests and responses
// (RFC 7252 §3, §12.1).
type Code uint8

// Request codes.
const (
	Empty  Code = 0x00
	GET    Code = 0x01
	POST   Code = 0x02
	PUT    Code = 0x03
	DELETE Code = 0x04
)

// Response codes.
const (
	Created               Code = 0x41
	Deleted               Code = 0x42
	Valid                 Code = 0x43
	Changed               Code = 0x44
	Content               Code = 0x45
	BadRequest            Code = 0x80
	Unauthorized          Code = 0x81
	BadOption             Code = 0x82
	Forbidden             Code = 0x83
	NotFound              Code = 0x84
	MethodNotAllowed      Code = 0x85
	NotAcceptable         Code = 0x86
	PreconditionFailed    Code = 0x8C
	RequestEntityTooLarge Code = 0x8D
	UnsupportedContent    Code = 0x8F
	InternalServerError   Code = 0xA0
	NotImplemented        Code = 0xA1
	BadGateway            Code = 0xA2
	ServiceUnavailable    Code = 0xA3
	GatewayTimeout        Code = 0xA4
	ProxyingNotSupported  Code = 0xA5
)

var codeNames = map[Code]string{
	Empty:                 "Empty",
	GET:                   "GET",
	POST:                  "POST",
	PUT:                   "PUT",
	DELETE:                "DELETE",
	Created:               "Created",
	Deleted:               "Deleted",
	Valid:                 "Valid",
	Changed:               "Changed",
	Content:               "Content",
	BadRequest:            "BadRequest",
	Unauthorized:          "Unauthorized",
	BadOption:             "BadOption",
	Forbidden:             "Forbidden",
	NotFound:              "NotFound",
	MethodNotAllowed:      "MethodNotAllowed",
	NotAcceptable:         "NotAcceptable",
	PreconditionFailed:    "PreconditionFailed",
	RequestEntityTooLarge: "RequestEntityTooLarge",
	UnsupportedContent:    "UnsupportedContent",
	InternalServerError:   "InternalServerError",
	NotImplemented:        "NotImplemented",
	BadGateway:            "BadGateway",
	ServiceUnavailable:    "ServiceUnavailable",
	GatewayTimeout:        "GatewayTimeout",
	ProxyingNotSupported:  "ProxyingNotSupported",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Code(0x%02x)", uint8(c))
}

// Class returns the 3 high bits of the code.
func (c Code) Class() uint8 { return uint8(c) >> 5 }

// Detail returns the 5 low bits of the code.
func (c Code) Detail() uint8 { return uint8(c) & 0x1f }

func (c Code) valid() bool {
	_, ok := codeNames[c]
	return ok
}
