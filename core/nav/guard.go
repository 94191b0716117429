package nav

// Flags exposes the session attributes the guard reads. The session
// container satisfies it directly.
type Flags interface {
	// IsAuthenticated reports whether an access token is currently held.
	IsAuthenticated() bool
	// IsAdministrator reports whether the current profile carries the
	// administrator role.
	IsAdministrator() bool
	// HasProfile reports whether a profile with a non-empty username has
	// been loaded for the session.
	HasProfile() bool
}

// Reason classifies why the guard redirected a transition.
type Reason int

const (
	// ReasonNone means the transition was allowed.
	ReasonNone Reason = iota
	// ReasonAuthRequired means the target needs a session and none is held.
	ReasonAuthRequired
	// ReasonAdminRequired means the target needs the administrator role
	// and the current user lacks it.
	ReasonAdminRequired
	// ReasonAlreadyAuthenticated means a signed-in user with a loaded
	// profile tried to reach an entry page.
	ReasonAlreadyAuthenticated
)

// String returns a short identifier for logging.
func (r Reason) String() string {
	switch r {
	case ReasonAuthRequired:
		return "auth_required"
	case ReasonAdminRequired:
		return "admin_required"
	case ReasonAlreadyAuthenticated:
		return "already_authenticated"
	default:
		return "allowed"
	}
}

// Decision is the outcome of evaluating a single route against the
// current session flags.
type Decision struct {
	// Allowed reports whether the transition may proceed to the target.
	Allowed bool
	// RedirectTo is the path the transition is diverted to when not allowed.
	RedirectTo string
	// ReturnTo carries the originally requested path when the redirect
	// leads to the login page, so the flow can resume after sign-in.
	ReturnTo string
	// Reason classifies the redirect for logging and user notices.
	Reason Reason
}

// Guard decides whether a route transition may proceed. Evaluation is a
// pure function of the target route and the current session flags; the
// guard itself holds no transition state.
type Guard struct {
	// Login is the path of the sign-in page. Defaults to "/login".
	Login string
	// Register is the path of the sign-up page. Defaults to "/register".
	Register string
	// Home is the fallback path for denied or bounced transitions.
	// Defaults to "/".
	Home string
	// Flags supplies the live session attributes. A nil source evaluates
	// every transition as anonymous.
	Flags Flags
}

type anonymous struct{}

func (anonymous) IsAuthenticated() bool { return false }
func (anonymous) IsAdministrator() bool { return false }
func (anonymous) HasProfile() bool      { return false }

func (g Guard) flags() Flags {
	if g.Flags != nil {
		return g.Flags
	}
	return anonymous{}
}

func (g Guard) loginPath() string {
	if g.Login != "" {
		return g.Login
	}
	return "/login"
}

func (g Guard) registerPath() string {
	if g.Register != "" {
		return g.Register
	}
	return "/register"
}

func (g Guard) homePath() string {
	if g.Home != "" {
		return g.Home
	}
	return "/"
}

// Evaluate applies the guard rules to target in order and returns the
// first decision that matches. Rules:
//
//  1. The target requires an active session and none is held: redirect
//     to the login page, carrying the target path for post-login return.
//     A session is active only when a token is held AND the profile has
//     been resolved; a bare token is not proof of a valid session.
//  2. The target requires the administrator role and the user lacks it:
//     redirect home.
//  3. The target is an entry page (login or register) and a session is
//     active: redirect home.
//  4. Otherwise the transition is allowed.
func (g Guard) Evaluate(target Route) Decision {
	flags := g.flags()
	active := flags.IsAuthenticated() && flags.HasProfile()
	switch {
	case target.RequiresAuth && !active:
		return Decision{
			RedirectTo: g.loginPath(),
			ReturnTo:   target.Path,
			Reason:     ReasonAuthRequired,
		}
	case target.RequiresAdmin && !flags.IsAdministrator():
		return Decision{
			RedirectTo: g.homePath(),
			Reason:     ReasonAdminRequired,
		}
	case (target.Path == g.loginPath() || target.Path == g.registerPath()) && active:
		return Decision{
			RedirectTo: g.homePath(),
			Reason:     ReasonAlreadyAuthenticated,
		}
	default:
		return Decision{Allowed: true}
	}
}
