// Package session holds the authenticated browsing context: the session
// token and, once fetched, the user profile. The Container is the single
// source of truth: the credential store is only its durable mirror, and the
// navigation guard only reads its derived flags.
//
// State changes funnel through three operations: Login stores the access
// token (the refresh token is returned but never persisted), FetchProfile
// resolves and stores the identity, and Logout clears everything locally
// with no network call. The derived flags IsAuthenticated, IsAdministrator,
// IsStaff and HasProfile reflect only the last written state.
package session
