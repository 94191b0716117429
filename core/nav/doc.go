// Package nav guards route transitions against the current session.
//
// A Guard evaluates a target Route against live session Flags and
// returns a Decision: allow, or redirect with a reason. Evaluation is
// pure and ordered, so the same route and flags always produce the same
// outcome. A Router wraps the guard with a route table, follows
// redirects until a transition settles, tracks the current path, and
// feeds page titles to a TitleSink.
//
//	guard := nav.Guard{Flags: sess}
//	router := nav.NewRouter(guard,
//		nav.WithDefaultTitle("Arena"),
//		nav.WithTitleSink(view.SetTitle),
//	)
//	router.Register(
//		nav.Route{Path: "/", Title: "Home"},
//		nav.Route{Path: "/login", Title: "Sign In"},
//		nav.Route{Path: "/admin", Title: "Admin", RequiresAuth: true, RequiresAdmin: true},
//	)
//
//	tr, err := router.Navigate(ctx, "/admin")
//
// An unauthenticated navigation to a guarded route lands on the login
// page with Transition.ReturnTo carrying the original destination, so
// the flow can resume after sign-in. The router also satisfies the HTTP
// client's Navigator, closing the loop on expired sessions.
package nav
