package codec

// GetPayload walks past the header, token, and options exactly as the
// option iterator does, then returns the payload view: the bytes after the
// first 0xFF marker it finds, or (nil, nil) if no marker is present before
// end-of-buffer. A marker with nothing after it is InvalidPacket.
//
// The original source's coapGetPayload shared the option-count
// fallthrough bug and additionally looped on `|| newLength == 0` where
// `&& newLength != 0` was meant, which never terminates on a
// marker-less payload; this walk reuses decodeOption so neither bug can
// recur.
func GetPayload(buf []byte, tokenLength uint8) ([]byte, error) {
	cursor := optionsStart(tokenLength)
	var acc uint32
	for {
		number, _, next, err := decodeOption(buf, cursor, acc)
		if IsMarker(err) {
			rest := buf[next+1:]
			if len(rest) == 0 {
				return nil, newErr(InvalidPacket)
			}
			return rest, nil
		}
		if IsEnd(err) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		acc = number
		cursor = next
	}
}

// SetPayload requires a non-empty value, writes the 0xFF marker followed by
// value, and returns the new buffer length. The payload must be the last
// thing written to a message; no option may be added after it.
func SetPayload(buf []byte, length int, value []byte) (newLength int, err error) {
	if len(value) == 0 {
		return length, newErr(InvalidPayload)
	}
	need := length + 1 + len(value)
	if need > len(buf) {
		return length, newErr(InsufficientBuffer)
	}
	buf[length] = PayloadMarker
	copy(buf[length+1:], value)
	return need, nil
}
