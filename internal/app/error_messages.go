// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages zephyr-centrum writes into
// response bodies. The machine-readable codes live next to the transports.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidUserID is returned for a non-numeric or non-positive {id}.
	MsgInvalidUserID = "Invalid user id"

	// MsgInvalidCredentials is returned when the username/password pair does
	// not match a stored account. The same text is used for both halves.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgValidationFailed accompanies a list of rejected fields.
	MsgValidationFailed = "Validation failed"

	// MsgAuthenticationRequired is returned to anonymous callers of a
	// protected route and to holders of an expired or forged session.
	MsgAuthenticationRequired = "Authentication required"

	// MsgAccessDenied is returned when the session role is not allowed.
	MsgAccessDenied = "Access denied"

	MsgUsernameAlreadyExists = "Username is already taken"
	MsgEmailAlreadyExists    = "Email is already registered"
	MsgUserNotFound          = "User not found"

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "Not found"

	// MsgTooManyRequests is returned when the admission gate refuses a call.
	MsgTooManyRequests = "Too many requests"

	MsgInternalServerError = "Internal server error"

	MsgLoggedOut = "Logged out"
)
