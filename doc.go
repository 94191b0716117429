// Package arena is a Go client SDK for the Arena sports-event management
// platform API. It provides a single HTTP access layer with credential
// injection and failure classification, a durable credential store, an
// explicit session state container, a navigation guard for client-side
// routing, and typed services for every platform resource.
//
// # Package Organization
//
//	github.com/arenakit/arena/core/config      - Environment-driven client configuration
//	github.com/arenakit/arena/core/credentials - Durable bearer-token and profile storage
//	github.com/arenakit/arena/core/client      - HTTP chokepoint: request stages, classification, session recovery
//	github.com/arenakit/arena/core/session     - Session state container with derived authorization flags
//	github.com/arenakit/arena/core/nav         - Route descriptors, navigation guard, and router
//	github.com/arenakit/arena/api              - Per-resource REST services and the live comment stream
//	github.com/arenakit/arena/pkg/logger       - log/slog attribute helpers
//	github.com/arenakit/arena/pkg/token        - Unverified JWT inspection for diagnostics
//
// # Wiring
//
// The pieces are explicit instances passed by reference; there is no ambient
// global state:
//
//	var cfg client.Config
//	config.MustLoad(&cfg)
//	store := credentials.Mirror(fileStore, redisStore)
//	httpc, err := client.New(cfg, client.WithCredentials(store))
//	sess := session.New(httpc, store)
//	router := nav.NewRouter(nav.Guard{Flags: sess})
//	httpc.SetSessionResetter(sess)
//	httpc.SetNavigator(router)
//	svc := api.New(httpc)
package arena
