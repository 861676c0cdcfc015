package codec

// Option is a single decoded (number, value) pair. Numbers are carried on
// the wire as a delta from the previous option's number; Option always
// holds the absolute number, already reduced from that delta.
type Option struct {
	Number uint32
	Value  []byte
}

// reservedOptionNumbers are rejected by the inserter (spec.md §6): numbers
// the registry defines but this codec does not support adding.
var reservedOptionNumbers = map[uint32]bool{
	2: true, 9: true, 10: true, 128: true, 132: true, 136: true, 140: true,
}

// IsMarker reports whether err is the FoundPayloadMarker control signal.
func IsMarker(err error) bool {
	k, ok := KindOf(err)
	return ok && k == FoundPayloadMarker
}

// IsEnd reports whether err is the EndOfPacket control signal.
func IsEnd(err error) bool {
	k, ok := KindOf(err)
	return ok && k == EndOfPacket
}

// decodeOption parses a single option's TLV triple starting at buf[cursor],
// given the running absolute-number accumulator acc (spec.md §4.3). It
// returns the option's absolute number, a view over its value bytes, and
// the cursor advanced past it. FoundPayloadMarker and EndOfPacket are
// returned as ordinary errors of those Kinds — check with IsMarker/IsEnd,
// they are control signals rather than protocol faults.
func decodeOption(buf []byte, cursor int, acc uint32) (number uint32, value []byte, newCursor int, err error) {
	if cursor >= len(buf) {
		return 0, nil, cursor, newErr(EndOfPacket)
	}
	if buf[cursor] == PayloadMarker {
		return 0, nil, cursor, newErr(FoundPayloadMarker)
	}

	deltaNibble := int(buf[cursor] >> 4)
	lengthNibble := int(buf[cursor] & 0x0F)
	cursor++

	delta, cursor, err := decodeDeltaOrLength(buf, cursor, deltaNibble)
	if err != nil {
		return 0, nil, cursor, err
	}
	length, cursor, err := decodeDeltaOrLength(buf, cursor, lengthNibble)
	if err != nil {
		return 0, nil, cursor, err
	}

	if cursor+length > len(buf) {
		return 0, nil, cursor, newErr(InvalidPacket)
	}

	value = buf[cursor : cursor+length]
	cursor += length
	number = acc + uint32(delta)

	return number, value, cursor, nil
}

// decodeDeltaOrLength resolves one nibble of an option header (shared logic
// for the delta and length fields, which use identical escape rules).
func decodeDeltaOrLength(buf []byte, cursor int, nibble int) (value int, newCursor int, err error) {
	switch nibble {
	case extNibbleErr:
		return 0, cursor, newErr(InvalidPacket)
	case extNibbleWord:
		if cursor+2 > len(buf) {
			return 0, cursor, newErr(InvalidPacket)
		}
		word := int(buf[cursor])<<8 | int(buf[cursor+1])
		return word + extWordAddend, cursor + 2, nil
	case extNibbleByte:
		if cursor+1 > len(buf) {
			return 0, cursor, newErr(InvalidPacket)
		}
		return int(buf[cursor]) + extByteAddend, cursor + 1, nil
	default:
		return nibble, cursor, nil
	}
}

// optionHeaderLen returns the number of header bytes (delta/length nibble
// byte plus any escapes) an option with the given delta and value length
// would need. Splitting sizing from emitting (writeOptionHeader) lets the
// inserter fail on capacity before it mutates the buffer (spec.md §4.5).
func optionHeaderLen(delta, length int) int {
	n := 1
	n += extFieldLen(delta)
	n += extFieldLen(length)
	return n
}

func extFieldLen(v int) int {
	switch {
	case v >= extWordAddend:
		return 2
	case v >= extByteAddend:
		return 1
	default:
		return 0
	}
}

// writeOptionHeader writes the encoded (delta, length) header into buf at
// pos and returns the position immediately after it. The caller has
// already verified buf is long enough via optionHeaderLen.
func writeOptionHeader(buf []byte, pos, delta, length int) int {
	deltaNibble, deltaExt, deltaExtLen := encodeField(delta)
	lengthNibble, lengthExt, lengthExtLen := encodeField(length)

	buf[pos] = byte(deltaNibble<<4) | byte(lengthNibble)
	pos++
	if deltaExtLen == 1 {
		buf[pos] = byte(deltaExt)
		pos++
	} else if deltaExtLen == 2 {
		buf[pos] = byte(deltaExt >> 8)
		buf[pos+1] = byte(deltaExt)
		pos += 2
	}
	if lengthExtLen == 1 {
		buf[pos] = byte(lengthExt)
		pos++
	} else if lengthExtLen == 2 {
		buf[pos] = byte(lengthExt >> 8)
		buf[pos+1] = byte(lengthExt)
		pos += 2
	}
	return pos
}

// encodeField splits a raw delta or length value into its wire nibble and
// escape bytes, and reports how many escape bytes that is (0, 1, or 2).
func encodeField(v int) (nibble, ext, extLen int) {
	switch {
	case v >= extWordAddend:
		return extNibbleWord, v - extWordAddend, 2
	case v >= extByteAddend:
		return extNibbleByte, v - extByteAddend, 1
	default:
		return v, 0, 0
	}
}
