package codec

// Message is the logical tuple spec.md §3 names: version, type, token,
// code, message-id, ordered options, and payload. It is a convenience
// layer over the primitive accessors/mutators below it — Decode and
// Encode do not duplicate any parsing or serialization logic, they only
// drive it — adapted from the teacher's coap.Message (coap/msg.go), whose
// Parse/Bytes pair plays the same role over its own buffer-indexed
// helpers.
type Message struct {
	Version   uint8
	Type      Type
	Code      Code
	Token     []byte
	MessageID uint16
	Options   []Option
	Payload   []byte
}

// Decode parses buf into a Message. It validates first so that every field
// read afterwards is known to be well-formed.
func Decode(buf []byte) (Message, error) {
	if err := Validate(buf); err != nil {
		return Message{}, err
	}

	version, err := GetVersion(buf)
	if err != nil {
		return Message{}, err
	}
	typ, err := GetType(buf)
	if err != nil {
		return Message{}, err
	}
	tkl, err := GetTokenLength(buf)
	if err != nil {
		return Message{}, err
	}
	code, err := GetCode(buf)
	if err != nil {
		return Message{}, err
	}
	mid, err := GetMessageID(buf)
	if err != nil {
		return Message{}, err
	}

	token := make([]byte, tkl)
	if err := GetToken(buf, tkl, token); err != nil {
		return Message{}, err
	}

	count, err := CountOptions(buf, tkl)
	if err != nil {
		return Message{}, err
	}
	options := make([]Option, 0, count)
	for i := 0; i < count; i++ {
		opt, _, err := GetOption(buf, tkl, i)
		if err != nil {
			return Message{}, err
		}
		options = append(options, Option{
			Number: opt.Number,
			Value:  append([]byte(nil), opt.Value...),
		})
	}

	payload, err := GetPayload(buf, tkl)
	if err != nil {
		return Message{}, err
	}
	var payloadCopy []byte
	if len(payload) > 0 {
		payloadCopy = append([]byte(nil), payload...)
	}

	return Message{
		Version:   version,
		Type:      typ,
		Code:      code,
		Token:     token,
		MessageID: mid,
		Options:   options,
		Payload:   payloadCopy,
	}, nil
}

// Encode assembles buf (a caller-owned array of bounded capacity, e.g.
// make([]byte, MaxMessageSize)) from m's fields and returns the written
// prefix. It drives the encode-side state machine spec.md §4.8 describes —
// header, then token, then options in non-decreasing order, then at most
// one payload — by construction: each step can only run after the
// previous one has produced a length to build on.
func (m Message) Encode(buf []byte) ([]byte, error) {
	length, err := EncodeHeader(buf, m.Version, m.Type, uint8(len(m.Token)), m.Code, m.MessageID)
	if err != nil {
		return nil, err
	}

	length, err = SetToken(buf, m.Token)
	if err != nil {
		return nil, err
	}

	for _, opt := range m.Options {
		length, err = AddOption(buf, length, uint8(len(m.Token)), opt.Number, opt.Value)
		if err != nil {
			return nil, err
		}
	}

	if len(m.Payload) > 0 {
		length, err = SetPayload(buf, length, m.Payload)
		if err != nil {
			return nil, err
		}
	}

	return buf[:length], nil
}
