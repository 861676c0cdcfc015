package codec

// GetToken copies tokenLength bytes from offset 4 into dst. dst must have
// length >= tokenLength; it returns InsufficientBuffer if the source buffer
// doesn't hold that many bytes. A zero-length token succeeds silently.
func GetToken(buf []byte, tokenLength uint8, dst []byte) error {
	end := HeaderLength + int(tokenLength)
	if len(buf) < end {
		return newErr(InsufficientBuffer)
	}
	copy(dst, buf[HeaderLength:end])
	return nil
}

// SetToken writes tokenLength bytes starting at offset 4, assuming the
// 4-byte header has already been written. It returns the new buffer length,
// 4+tokenLength.
func SetToken(buf []byte, token []byte) (length int, err error) {
	if len(token) > MaxTokenLength {
		return 0, newErr(InvalidTokenLength)
	}
	end := HeaderLength + len(token)
	if len(buf) < end {
		return 0, newErr(InsufficientBuffer)
	}
	copy(buf[HeaderLength:end], token)
	return end, nil
}
