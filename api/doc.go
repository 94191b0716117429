// Package api provides typed resource services for the event platform's
// REST surface: accounts, events, sign-ups, results, announcements,
// interactions, carousels, feedback, uploads, and dashboard statistics.
//
// Every service is a thin layer over core/client, so all calls share the
// bearer stage, the failure taxonomy, and the session-expiry flow. List
// endpoints return Page[T], the server's page-number envelope, filtered
// through ListParams.
//
//	svc := api.New(httpc)
//	events, err := svc.Events.List(ctx, api.ListParams{Page: 1, Search: "marathon"})
//
// LiveComments is the one non-REST member: a websocket stream of comment
// word-cloud snapshots.
package api
