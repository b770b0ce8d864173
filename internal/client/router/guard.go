package router

// AuthState is the part of the session the guard reads.
type AuthState interface {
	IsAuthenticated() bool
}

// Decision is the outcome of one navigation. Path is the page to render;
// Redirects lists every path the request was sent to, in order.
type Decision struct {
	Requested string
	Path      string
	Redirects []string
}

func (d Decision) Redirected() bool {
	return len(d.Redirects) > 0
}

// Guard decides per navigation whether the requested page may render. It
// keeps no state of its own; every call reads the session afresh.
type Guard struct {
	auth AuthState
}

func NewGuard(auth AuthState) *Guard {
	return &Guard{auth: auth}
}

// maxHops bounds redirect chains. The longest real chain is
// unknown -> home -> login.
const maxHops = 4

// Resolve applies the rules to path:
//   - the login page while authenticated goes home
//   - a protected page while anonymous goes to login
//   - an unknown path goes home, where the rules apply again
func (g *Guard) Resolve(p string) Decision {
	d := Decision{Requested: p}
	cur := Normalize(p)

	for hop := 0; hop < maxHops; hop++ {
		next, redirect := g.step(cur)
		if !redirect {
			break
		}
		d.Redirects = append(d.Redirects, next)
		cur = next
	}
	d.Path = cur
	return d
}

func (g *Guard) step(p string) (string, bool) {
	authed := g.auth.IsAuthenticated()
	switch {
	case p == LoginPath:
		if authed {
			return HomePath, true
		}
		return p, false
	case IsProtected(p):
		if !authed {
			return LoginPath, true
		}
		return p, false
	default:
		return HomePath, true
	}
}
