// Package client talks to the remote authentication API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) with the four
//     calls the front end needs: Login, Register, Logout and CurrentUser.
//  2. A concrete HTTP/JSON implementation (see HTTPClient). The session is an
//     opaque cookie set by the server; HTTPClient keeps it in an in-memory
//     cookie jar and sends it on every request, the same way a browser does
//     with credentials included. Nothing is written to disk.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Any non-2xx response becomes an
// *APIError carrying the status code and the decoded error body, which is
// either a structured list ({"error":[{"message":...}]}) or a single message
// ({"message":...}). Use errors.Is / errors.As to inspect them.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Every call honours ctx; the client
// itself sets no timeout.
package client
