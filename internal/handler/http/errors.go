// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware. They are only
// logged: every rejection looks the same to the client.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrValidatorPanicked is returned when the token validator panicked.
	ErrValidatorPanicked = errors.New("token validator panicked")
)

// Request-shape errors, detected before any service call.
var (
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidRequestBody = errors.New("invalid request body")
)
