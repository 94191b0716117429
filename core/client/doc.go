// Package client implements the HTTP access layer: a single chokepoint that
// every outbound platform call passes through.
//
// Before transmission an explicit ordered list of request stages transforms
// the envelope: bearer credential injection, content-type resolution
// (multipart bodies keep their boundary-bearing type), request IDs. Each
// stage is a pure function from envelope to envelope, so classification
// branches are unit-testable in isolation.
//
// After transmission the client classifies the result. Success in the 2xx
// range unwraps the payload; the caller never sees the transport envelope.
// Every failure is notified exactly once through the Notifier port and then
// re-signaled to the caller:
//
//   - 401 raises a blocking confirmation; on acknowledgement the credential
//     store and the registered session state are cleared and the registered
//     navigator moves to the login route. Dismissal takes no further action.
//   - 403, 404, 500 and everything else become non-blocking notices, with
//     server messages resolved detail-first, then message, then a literal.
//   - Transport failures (no response, elapsed deadline) notify a network
//     notice and return ErrNetwork.
//   - Pre-transmission failures notify the error's own message and return
//     ErrRequestBuild.
//
// No error is ever swallowed except the user's dismissal of the expiry
// confirmation, which intentionally leaves the current view in place.
package client
