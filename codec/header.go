package codec

import "encoding/binary"

// Header byte 0 layout (MSB -> LSB): VV TT KKKK — version(2) type(2) tkl(4).
const (
	verShift = 6
	verMask  = 0x03
	typShift = 4
	typMask  = 0x03
	tklMask  = 0x0F
)

// GetVersion reads the 2-bit version field. It fails InvalidVersion unless
// the value is 1 (RFC 7252 §3).
func GetVersion(buf []byte) (uint8, error) {
	if len(buf) < HeaderLength {
		return 0, newErr(InvalidPacket)
	}
	v := (buf[0] >> verShift) & verMask
	if v != Version {
		return 0, newErr(InvalidVersion)
	}
	return v, nil
}

// SetVersion writes the version field into byte 0, preserving the type and
// token-length bits already there.
func SetVersion(buf []byte, version uint8) error {
	if len(buf) < HeaderLength {
		return newErr(InvalidPacket)
	}
	buf[0] = (buf[0] &^ (verMask << verShift)) | ((version & verMask) << verShift)
	return nil
}

// GetType reads the 2-bit type field. Out-of-range is unreachable from 2
// raw bits but the check is kept for symmetry with SetType and with the
// other accessors.
func GetType(buf []byte) (Type, error) {
	if len(buf) < HeaderLength {
		return 0, newErr(InvalidPacket)
	}
	t := Type((buf[0] >> typShift) & typMask)
	if !t.valid() {
		return 0, newErr(InvalidType)
	}
	return t, nil
}

// SetType writes the type field into byte 0, preserving version and tkl.
func SetType(buf []byte, t Type) error {
	if len(buf) < HeaderLength {
		return newErr(InvalidPacket)
	}
	if !t.valid() {
		return newErr(InvalidType)
	}
	buf[0] = (buf[0] &^ (typMask << typShift)) | (uint8(t&typMask) << typShift)
	return nil
}

// GetTokenLength reads the 4-bit token-length field. Values 9..15 are
// reserved and rejected as InvalidTokenLength.
func GetTokenLength(buf []byte) (uint8, error) {
	if len(buf) < HeaderLength {
		return 0, newErr(InvalidPacket)
	}
	tkl := buf[0] & tklMask
	if tkl > MaxTokenLength {
		return 0, newErr(InvalidTokenLength)
	}
	return tkl, nil
}

// SetTokenLength writes the token-length field into byte 0, preserving
// version and type.
func SetTokenLength(buf []byte, tkl uint8) error {
	if len(buf) < HeaderLength {
		return newErr(InvalidPacket)
	}
	if tkl > MaxTokenLength {
		return newErr(InvalidTokenLength)
	}
	buf[0] = (buf[0] &^ tklMask) | (tkl & tklMask)
	return nil
}

// GetCode reads byte 1. Only the codes enumerated in types.go are accepted.
func GetCode(buf []byte) (Code, error) {
	if len(buf) < HeaderLength {
		return 0, newErr(InvalidPacket)
	}
	c := Code(buf[1])
	if !c.valid() {
		return 0, newErr(UnknownCode)
	}
	return c, nil
}

// SetCode writes byte 1.
func SetCode(buf []byte, c Code) error {
	if len(buf) < HeaderLength {
		return newErr(InvalidPacket)
	}
	if !c.valid() {
		return newErr(UnknownCode)
	}
	buf[1] = byte(c)
	return nil
}

// GetMessageID reads the big-endian 16-bit message-id in bytes 2-3. Any
// value is legal; only the length check can fail.
func GetMessageID(buf []byte) (uint16, error) {
	if len(buf) < HeaderLength {
		return 0, newErr(InvalidPacket)
	}
	return binary.BigEndian.Uint16(buf[2:4]), nil
}

// SetMessageID writes bytes 2-3 and establishes the header length at 4.
func SetMessageID(buf []byte, id uint16) (length int, err error) {
	if len(buf) < HeaderLength {
		return 0, newErr(InvalidPacket)
	}
	binary.BigEndian.PutUint16(buf[2:4], id)
	return HeaderLength, nil
}

// EncodeHeader writes all four header fields in one call, the way
// coapSetPacketHeader composes the individual setters in the original
// source. It returns the new buffer length, always 4 on success.
func EncodeHeader(buf []byte, version uint8, t Type, tkl uint8, code Code, messageID uint16) (int, error) {
	if len(buf) < HeaderLength {
		return 0, newErr(InvalidPacket)
	}
	buf[0] = 0
	buf[1] = 0
	if err := SetVersion(buf, version); err != nil {
		return 0, err
	}
	if err := SetType(buf, t); err != nil {
		return 0, err
	}
	if err := SetTokenLength(buf, tkl); err != nil {
		return 0, err
	}
	if err := SetCode(buf, code); err != nil {
		return 0, err
	}
	return SetMessageID(buf, messageID)
}
