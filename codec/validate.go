package codec

import "github.com/sirupsen/logrus"

// Validate confirms the structural well-formedness of buf without
// extracting values: header -> token -> options -> payload, in that
// order, returning the first error encountered (spec.md §7). It is pure
// and idempotent — repeated calls return the same result and never mutate
// buf, unlike the original coapValidatePacket, which called
// coapCodeIsValid on the message *type* instead of the code; this walk
// checks the code independently of the type so that mistake can't recur.
func Validate(buf []byte) error {
	if _, err := GetVersion(buf); err != nil {
		logrus.WithField("kind", kindKind(err)).Debug("coap: header rejected")
		return err
	}
	if _, err := GetType(buf); err != nil {
		logrus.WithField("kind", kindKind(err)).Debug("coap: header rejected")
		return err
	}
	tokenLength, err := GetTokenLength(buf)
	if err != nil {
		logrus.WithField("kind", kindKind(err)).Debug("coap: header rejected")
		return err
	}
	if _, err := GetCode(buf); err != nil {
		logrus.WithField("kind", kindKind(err)).Debug("coap: code rejected")
		return err
	}
	if _, err := GetMessageID(buf); err != nil {
		return err
	}

	if optionsStart(tokenLength) > len(buf) {
		return newErr(InsufficientBuffer)
	}
	if err := GetToken(buf, tokenLength, make([]byte, tokenLength)); err != nil {
		return err
	}

	count, err := CountOptions(buf, tokenLength)
	if err != nil {
		logrus.WithField("kind", kindKind(err)).Warn("coap: option region rejected")
		return err
	}

	if err := rejectUnknownCriticalOptions(buf, tokenLength, count); err != nil {
		logrus.WithField("kind", kindKind(err)).Warn("coap: unrecognized critical option")
		return err
	}

	if _, err := GetPayload(buf, tokenLength); err != nil {
		logrus.WithField("kind", kindKind(err)).Warn("coap: payload rejected")
		return err
	}

	return nil
}

// rejectUnknownCriticalOptions walks the count options already confirmed
// present by CountOptions and rejects any whose number is both unrecognized
// (spec.md §6) and Critical (RFC 7252 §5.4.1: an endpoint that does not
// understand a critical option must reject the message outright rather
// than silently ignore it).
func rejectUnknownCriticalOptions(buf []byte, tokenLength uint8, count int) error {
	for i := 0; i < count; i++ {
		opt, _, err := GetOption(buf, tokenLength, i)
		if err != nil {
			return err
		}
		id := OptionID(opt.Number)
		if !id.known() && id.Critical() {
			return wrapErrf(InvalidOption, "unrecognized critical option %d", opt.Number)
		}
	}
	return nil
}

func kindKind(err error) string {
	if k, ok := KindOf(err); ok {
		return k.String()
	}
	return "unknown"
}
