// Package api contains the client-side contract for talking to the
// taskquest backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register/Login/Logout/VerifyEmail plus the todo CRUD operations.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) that
//     attaches the stored bearer token, normalizes server and transport
//     failures, and unwraps response envelopes.
//
// # Error Handling
//
// Failures reported by the server carry the server-supplied message and the
// HTTP status code (see Error). A request attempted without a stored access
// token fails immediately with common.ErrNotAuthenticated and never reaches
// the network. Transport failures (no response received) wrap
// common.ErrUnavailable. Callers match conditions with errors.Is/errors.As.
//
// The client never mutates the token store on failure; deciding whether a
// rejected token should be cleared is the session manager's job. The single
// exception is a successful login, which persists the returned token pair.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation; a per-request timeout from the
// configuration bounds every call.
package api
