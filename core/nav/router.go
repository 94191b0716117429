package nav

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/arenakit/arena/pkg/logger"
)

// redirect chains longer than this indicate a route table that bounces
// between guarded pages without ever settling.
const maxRedirects = 8

// TitleSink receives the page title of the route a transition is headed
// to. It fires for every evaluated target, including ones the guard then
// redirects away from, so the title always reflects the latest intent.
type TitleSink func(title string)

// Transition describes a completed navigation.
type Transition struct {
	// From is the path the navigation started at.
	From string
	// To is the route the navigation settled on.
	To Route
	// RedirectedFrom is the originally requested path when the guard
	// diverted the navigation, empty for direct transitions.
	RedirectedFrom string
	// ReturnTo carries the pre-login destination when the navigation was
	// diverted to the login page.
	ReturnTo string
}

// Option configures a Router.
type Option func(*Router)

// WithTitleSink sets the receiver for page titles.
func WithTitleSink(sink TitleSink) Option {
	return func(r *Router) {
		if sink != nil {
			r.title = sink
		}
	}
}

// WithDefaultTitle sets the title used for routes that declare none.
func WithDefaultTitle(title string) Option {
	return func(r *Router) { r.defaultTitle = title }
}

// WithLogger sets the logger for navigation events.
func WithLogger(log *slog.Logger) Option {
	return func(r *Router) {
		if log != nil {
			r.log = log
		}
	}
}

// Router holds the route table and applies the guard to every
// navigation. Safe for concurrent use.
type Router struct {
	guard        Guard
	routes       map[string]Route
	title        TitleSink
	defaultTitle string
	log          *slog.Logger

	mu      sync.RWMutex
	current string
}

// NewRouter returns a router guarding transitions with guard. Routes are
// added with Register before the first navigation.
func NewRouter(guard Guard, opts ...Option) *Router {
	r := &Router{
		guard:  guard,
		routes: make(map[string]Route),
		title:  func(string) {},
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds routes to the table, keyed by path. A later registration
// for the same path replaces the earlier one.
func (r *Router) Register(routes ...Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rt := range routes {
		r.routes[rt.Path] = rt
	}
}

// Current returns the path the router last settled on.
func (r *Router) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Navigate moves to path, applying the guard and following redirects
// until an allowed route is reached. The title sink fires once per
// evaluated target. Returns ErrRedirectLoop when the guard keeps
// diverting without settling.
func (r *Router) Navigate(ctx context.Context, path string) (Transition, error) {
	tr := Transition{From: r.Current()}

	for hop := 0; hop <= maxRedirects; hop++ {
		target := r.lookup(path)
		r.title(r.titleFor(target))

		dec := r.guard.Evaluate(target)
		if dec.Allowed {
			r.mu.Lock()
			r.current = target.Path
			r.mu.Unlock()

			tr.To = target
			r.log.DebugContext(ctx, "navigated",
				logger.Route(target.Path),
				slog.String("from", tr.From),
			)
			return tr, nil
		}

		if tr.RedirectedFrom == "" {
			tr.RedirectedFrom = target.Path
		}
		if dec.ReturnTo != "" {
			tr.ReturnTo = dec.ReturnTo
		}
		r.log.DebugContext(ctx, "navigation redirected",
			logger.Route(target.Path),
			slog.String("to", dec.RedirectTo),
			slog.String("reason", dec.Reason.String()),
		)
		path = dec.RedirectTo
	}

	return Transition{}, fmt.Errorf("%w: starting at %q", ErrRedirectLoop, tr.RedirectedFrom)
}

// NavigateToLogin moves to the login page. It satisfies the HTTP
// client's Navigator so expired sessions land on sign-in.
func (r *Router) NavigateToLogin(ctx context.Context) {
	if _, err := r.Navigate(ctx, r.guard.loginPath()); err != nil {
		r.log.WarnContext(ctx, "login navigation failed", logger.Error(err))
	}
}

// lookup resolves path against the route table. Unregistered paths get a
// bare descriptor so catch-all views still render with the default title.
func (r *Router) lookup(path string) Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if rt, ok := r.routes[path]; ok {
		return rt
	}
	return Route{Path: path}
}

func (r *Router) titleFor(rt Route) string {
	if rt.Title != "" {
		return rt.Title
	}
	return r.defaultTitle
}
