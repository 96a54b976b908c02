package session

// Resolve is the route guard: a pure function of the authenticated flag and
// the requested route. Unauthenticated users asking for a protected view get
// the login view; authenticated users asking for login/register get sent to
// the employee list.
func Resolve(authenticated bool, requested Route) Route {
	if !authenticated {
		switch requested {
		case RouteLogin, RouteRegister:
			return requested
		default:
			return RouteLogin
		}
	}

	switch requested {
	case RouteLogin, RouteRegister:
		return RouteEmployees
	default:
		return requested
	}
}

// AllowRole gates role-restricted content. Exact match only, no hierarchy.
func AllowRole(sessionRole, required string) bool {
	return sessionRole == required
}
