package codec

// optionsStart returns the offset of the first option header byte.
func optionsStart(tokenLength uint8) int {
	return HeaderLength + int(tokenLength)
}

// CountOptions walks the option region without extracting values and
// returns how many options precede the payload marker or end-of-buffer.
// Any decode error aborts the walk with that error (spec.md §4.4); the
// original source's coapGetOptionCount dropped a `break` between the
// extended-length cases and undercounted options with 2-byte length
// escapes — this walk shares decodeOption with GetOption so that bug
// cannot recur here.
func CountOptions(buf []byte, tokenLength uint8) (int, error) {
	cursor := optionsStart(tokenLength)
	var acc uint32
	count := 0
	for {
		number, _, next, err := decodeOption(buf, cursor, acc)
		if IsMarker(err) || IsEnd(err) {
			return count, nil
		}
		if err != nil {
			return 0, err
		}
		acc = number
		cursor = next
		count++
	}
}

// GetOption returns the zero-based index-th option after the token, along
// with the buffer offset immediately following it. It returns
// FoundPayloadMarker if the payload marker is reached before index, or
// EndOfPacket if the buffer ends first (spec.md §4.4).
func GetOption(buf []byte, tokenLength uint8, index int) (Option, int, error) {
	cursor := optionsStart(tokenLength)
	var acc uint32
	for i := 0; ; i++ {
		number, value, next, err := decodeOption(buf, cursor, acc)
		if err != nil {
			return Option{}, cursor, err
		}
		if i == index {
			return Option{Number: number, Value: value}, next, nil
		}
		acc = number
		cursor = next
	}
}

// highestOptionNumber returns the absolute number of the last option
// already present, or 0 if there are none — the delta base AddOption
// appends against.
func highestOptionNumber(buf []byte, tokenLength uint8) (uint32, error) {
	cursor := optionsStart(tokenLength)
	var acc uint32
	for {
		number, _, next, err := decodeOption(buf, cursor, acc)
		if IsMarker(err) || IsEnd(err) {
			return acc, nil
		}
		if err != nil {
			return 0, err
		}
		acc = number
		cursor = next
	}
}

// AddOption appends a new option at the current tail of buf[:length],
// which must already hold a valid header, token, and zero or more earlier
// options. It grows the buffer by exactly optionHeaderLen(delta,len(value)) +
// len(value) bytes and returns the new length.
//
// Order is enforced at append time (OptionsOutOfOrder) rather than via a
// post-assembly sort, and reserved option numbers are rejected up front —
// the same split the original source used between sizing
// (coapBuildOptionHeaderLength) and emitting (coapBuildOptionHeader), kept
// here as optionHeaderLen/writeOptionHeader so a too-small buffer is caught
// before anything is written.
func AddOption(buf []byte, length int, tokenLength uint8, number uint32, value []byte) (newLength int, err error) {
	if reservedOptionNumbers[number] {
		return length, newErr(InvalidOption)
	}

	previous, err := highestOptionNumber(buf[:length], tokenLength)
	if err != nil {
		return length, err
	}
	if number < previous {
		return length, newErr(OptionsOutOfOrder)
	}
	delta := int(number - previous)

	headerLen := optionHeaderLen(delta, len(value))
	need := length + headerLen + len(value)
	if need > len(buf) {
		return length, newErr(InsufficientBuffer)
	}

	pos := writeOptionHeader(buf, length, delta, len(value))
	pos += copy(buf[pos:], value)
	return pos, nil
}
