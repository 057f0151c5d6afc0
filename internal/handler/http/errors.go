// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used when parsing the "Authorization" HTTP header.
// Callers can match against them with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is reported when the "Authorization"
	// header is present but cannot be split into at least two
	// space-separated parts (the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is reported when the "Authorization" header contains
	// the expected scheme prefix but the token value itself is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
