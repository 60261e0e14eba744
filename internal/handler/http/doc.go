// Package http implements the REST transport of the blog API.
//
// It wires the chi router, decodes request bodies, resolves bearer tokens
// into the caller identity and maps service errors to JSON
// {"message": ...} responses. Request tracing, access logging, CORS and
// response compression are applied as middleware before requests reach the
// service layer.
package http
