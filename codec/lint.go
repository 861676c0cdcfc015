package codec

import (
	"github.com/hashicorp/go-multierror"
)

// Lint runs every structural check Validate does but, unlike Validate,
// does not stop at the first failure — it collects every independent
// problem it can still determine and returns them together. This is not
// part of the spec'd wire contract (Validate's first-error behavior is);
// Lint exists for tooling that wants a full diagnostic of a malformed
// capture rather than a single sentinel, in the spirit of
// GiterLab-go-secoap's layered decoder/errors split.
func Lint(buf []byte) *multierror.Error {
	var result *multierror.Error

	if _, err := GetVersion(buf); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := GetType(buf); err != nil {
		result = multierror.Append(result, err)
	}
	tokenLength, err := GetTokenLength(buf)
	if err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := GetCode(buf); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := GetMessageID(buf); err != nil {
		result = multierror.Append(result, err)
	}

	if err != nil {
		// Without a trustworthy token length the option walk can't be
		// positioned; nothing further to add.
		return result
	}
	if optionsStart(tokenLength) > len(buf) {
		// The token runs past the end of the buffer, so there is no option
		// region to walk.
		return multierror.Append(result, newErr(InsufficientBuffer))
	}

	count, err := CountOptions(buf, tokenLength)
	if err != nil {
		result = multierror.Append(result, err)
	} else if err := rejectUnknownCriticalOptions(buf, tokenLength, count); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := GetPayload(buf, tokenLength); err != nil {
		result = multierror.Append(result, err)
	}

	return result
}
