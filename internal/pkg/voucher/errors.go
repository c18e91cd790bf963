// Package voucher implements the voucher lifecycle: code generation,
// print auditing and the one-directional active -> redeemed/expired
// transitions.
//
// Service-level error values are centralized here so callers can check
// them with errors.Is and translate them at the controller layer.
package voucher

import "errors"

var (
	// ErrNotActive is returned when a redeem or expire action hits a
	// voucher whose persisted status is no longer active. The conditional
	// update in the store is the final authority; this error is how a
	// lost race surfaces.
	ErrNotActive = errors.New("voucher is no longer active")

	// ErrCodeCollision is returned when two consecutive generation
	// attempts both collided on the code unique index.
	ErrCodeCollision = errors.New("voucher code collision after retry")
)
