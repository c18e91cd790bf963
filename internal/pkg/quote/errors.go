// Package quote implements the repair quote flow: the three-step
// configurator narrowing the catalog to a single priced repair, and the
// composer turning that repair plus customer contact fields into an
// outbound message.
//
// Service-level error values are centralized here so they can be returned
// consistently and checked by callers. Translation into user-facing
// messages happens at the controller layer.
package quote

import "errors"

var (
	// ErrNoManufacturer is returned when a model is selected before a
	// manufacturer.
	ErrNoManufacturer = errors.New("no manufacturer selected")

	// ErrConsentMissing is returned when a quote request is submitted
	// without the privacy consent flag.
	ErrConsentMissing = errors.New("privacy consent is required")

	// ErrProofTokenMissing is returned when a quote request is submitted
	// without an anti-automation proof token.
	ErrProofTokenMissing = errors.New("captcha proof token is required")

	// ErrInvalidDraft is returned when required customer fields are
	// missing or malformed.
	ErrInvalidDraft = errors.New("quote request draft is incomplete")
)
