// Package errs defines the typed errors shared by the domain and
// application layers.
//
// Every error type pairs a sentinel (ErrValueIsRequired, ErrObjectNotFound,
// ...) with a struct carrying the offending parameter and an optional cause.
// Callers classify failures with errors.Is against the sentinel and recover
// detail with errors.As against the struct, so transport adapters can map
// domain failures to status codes without string matching.
//
// Constructors come in plain and WithCause variants; the cause is preserved
// through Unwrap so the original driver or collaborator error stays
// reachable.
package errs
