// Package credentials provides durable storage for the session token and the
// serialized user profile. It is a passive mirror of session state: the
// session container owns the authoritative values and writes them through a
// Store so they survive process restarts.
//
// Three backends are provided: Memory for tests and ephemeral programs, File
// for a per-user state file, and Redis for sharing one session across
// processes. Mirror combines two backends into the usual two-location setup:
//
//	store := credentials.Mirror(
//		credentials.NewFile(statePath),
//		credentials.NewRedis(redisClient),
//	)
//
// All reads degrade to absent on storage trouble: an unreachable backend
// looks exactly like a logged-out state and never breaks a call path.
package credentials
