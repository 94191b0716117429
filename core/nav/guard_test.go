package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arenakit/arena/core/nav"
)

type stubFlags struct {
	authed  bool
	admin   bool
	profile bool
}

func (f stubFlags) IsAuthenticated() bool { return f.authed }
func (f stubFlags) IsAdministrator() bool { return f.admin }
func (f stubFlags) HasProfile() bool      { return f.profile }

func TestGuardEvaluate(t *testing.T) {
	t.Parallel()

	admin := nav.Route{Path: "/admin", RequiresAuth: true, RequiresAdmin: true}
	profilePage := nav.Route{Path: "/profile", RequiresAuth: true}
	login := nav.Route{Path: "/login"}
	register := nav.Route{Path: "/register"}
	home := nav.Route{Path: "/"}

	tests := []struct {
		name   string
		flags  stubFlags
		target nav.Route
		want   nav.Decision
	}{
		{
			name:   "guarded route without session redirects to login",
			flags:  stubFlags{},
			target: profilePage,
			want: nav.Decision{
				RedirectTo: "/login",
				ReturnTo:   "/profile",
				Reason:     nav.ReasonAuthRequired,
			},
		},
		{
			// A bare token is not an active session; the original
			// destination is still preserved for after sign-in.
			name:   "guarded route with token but unresolved profile redirects to login",
			flags:  stubFlags{authed: true},
			target: admin,
			want: nav.Decision{
				RedirectTo: "/login",
				ReturnTo:   "/admin",
				Reason:     nav.ReasonAuthRequired,
			},
		},
		{
			name:   "admin route with plain profile bounces home",
			flags:  stubFlags{authed: true, profile: true},
			target: admin,
			want: nav.Decision{
				RedirectTo: "/",
				Reason:     nav.ReasonAdminRequired,
			},
		},
		{
			name:   "admin route with administrator allowed",
			flags:  stubFlags{authed: true, admin: true, profile: true},
			target: admin,
			want:   nav.Decision{Allowed: true},
		},
		{
			name:   "login without session allowed",
			flags:  stubFlags{},
			target: login,
			want:   nav.Decision{Allowed: true},
		},
		{
			name:   "login with token but no profile allowed",
			flags:  stubFlags{authed: true},
			target: login,
			want:   nav.Decision{Allowed: true},
		},
		{
			name:   "login with token and profile bounces home",
			flags:  stubFlags{authed: true, profile: true},
			target: login,
			want: nav.Decision{
				RedirectTo: "/",
				Reason:     nav.ReasonAlreadyAuthenticated,
			},
		},
		{
			name:   "register with token and profile bounces home",
			flags:  stubFlags{authed: true, profile: true},
			target: register,
			want: nav.Decision{
				RedirectTo: "/",
				Reason:     nav.ReasonAlreadyAuthenticated,
			},
		},
		{
			name:   "open route always allowed",
			flags:  stubFlags{},
			target: home,
			want:   nav.Decision{Allowed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := nav.Guard{Flags: tt.flags}
			assert.Equal(t, tt.want, g.Evaluate(tt.target))
		})
	}
}

func TestGuardEvaluate_AuthBeforeAdmin(t *testing.T) {
	t.Parallel()

	// When both guards apply and no session is held, the login redirect
	// wins so the return path is preserved.
	g := nav.Guard{Flags: stubFlags{}}
	dec := g.Evaluate(nav.Route{Path: "/admin/events", RequiresAuth: true, RequiresAdmin: true})

	assert.False(t, dec.Allowed)
	assert.Equal(t, "/login", dec.RedirectTo)
	assert.Equal(t, "/admin/events", dec.ReturnTo)
	assert.Equal(t, nav.ReasonAuthRequired, dec.Reason)
}

func TestGuardEvaluate_CustomPaths(t *testing.T) {
	t.Parallel()

	g := nav.Guard{
		Login:    "/signin",
		Register: "/signup",
		Home:     "/dashboard",
		Flags:    stubFlags{authed: true, profile: true},
	}

	dec := g.Evaluate(nav.Route{Path: "/signin"})
	assert.Equal(t, "/dashboard", dec.RedirectTo)
	assert.Equal(t, nav.ReasonAlreadyAuthenticated, dec.Reason)

	// The default entry paths are not special when overridden.
	dec = g.Evaluate(nav.Route{Path: "/login"})
	assert.True(t, dec.Allowed)
}

func TestGuardEvaluate_Deterministic(t *testing.T) {
	t.Parallel()

	g := nav.Guard{Flags: stubFlags{authed: true, profile: true}}
	target := nav.Route{Path: "/login"}

	first := g.Evaluate(target)
	for range 5 {
		assert.Equal(t, first, g.Evaluate(target))
	}
}
