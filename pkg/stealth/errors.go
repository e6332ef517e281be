package stealth

import (
	"errors"

	"github.com/rymnc/go-erc5564/internal/crypto/curves"
)

// Common errors returned by the stealth address library.
var (
	// ErrInvalidMetaAddress is returned when a meta-address is malformed
	// or one of its public keys fails validation.
	ErrInvalidMetaAddress = errors.New("stealth: invalid meta-address")

	// ErrUnknownCurve is returned by NewSuite when no backend exists for
	// the requested curve name. Curve selection is explicit; there is no
	// default.
	ErrUnknownCurve = curves.ErrUnknownCurve

	// ErrPointDecode is returned when a byte buffer does not decode to a
	// valid group element. It is never silently corrected.
	ErrPointDecode = curves.ErrPointDecode
)
