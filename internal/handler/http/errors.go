// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRouteNotFound is reported for unknown paths and for known paths
	// requested with an unsupported method.
	ErrRouteNotFound = errors.New("route not found")

	// ErrNoIdentity is reported when a protected handler runs without an
	// authenticated caller in the request context.
	ErrNoIdentity = errors.New("no authenticated user in request context")
)

// Response messages that are part of the public API contract.
const (
	msgInvalidJSON     = "Invalid JSON was passed"
	msgRouteNotFound   = "Route not found"
	msgRunning         = "Blog API is running"
	msgNoToken         = "Not authorized, no token"
	msgTokenFailed     = "Not authorized, token failed"
	msgUserExists      = "User already exists"
	msgInvalidLogin    = "Invalid email or password"
	msgUserNotFound    = "User not found"
	msgBlogNotFound    = "Blog not found"
	msgUpdateForbidden = "Not authorized to update this blog"
	msgDeleteForbidden = "Not authorized to delete this blog"
	msgBlogRemoved     = "Blog removed"
	msgPasswordTooLong = "Password is too long"
	msgInternalError   = "Internal Server Error"
)
