package session

// Route names the client's views.
type Route string

const (
	RouteLogin      Route = "login"
	RouteRegister   Route = "register"
	RouteEmployees  Route = "employees"
	RouteAttendance Route = "attendance"
	RouteReports    Route = "reports"
)

// Navigator receives the navigation side effect of login/logout and guard
// redirects, so the state transitions stay testable without a real UI.
type Navigator interface {
	NavigateTo(route Route)
}

// Session holds the application-scoped auth state. It is not a global: the
// entry point builds one and hands it to whoever needs it.
type Session struct {
	store *Store
	nav   Navigator
	token string
}

// New derives the initial authenticated state from whether a credential is
// currently persisted.
func New(store *Store, nav Navigator) *Session {
	return &Session{
		store: store,
		nav:   nav,
		token: store.Load(),
	}
}

func (s *Session) Authenticated() bool {
	return s.token != ""
}

// Token implements v1.TokenSource. A token the server has since rejected is
// only discovered on the next failed request; no expiry tracking here.
func (s *Session) Token() string {
	return s.token
}

// Role reads the role claim from the held token, "" when unauthenticated or
// the token is unreadable.
func (s *Session) Role() string {
	if s.token == "" {
		return ""
	}
	identity, err := ParseIdentity(s.token)
	if err != nil {
		return ""
	}
	return identity.Role
}

// Login persists the credential and flips the session to authenticated.
func (s *Session) Login(token string) error {
	if err := s.store.Save(token); err != nil {
		return err
	}
	s.token = token
	return nil
}

// Logout erases the credential and always lands the user on the login view,
// no matter which view triggered it.
func (s *Session) Logout() error {
	err := s.store.Clear()
	s.token = ""
	s.nav.NavigateTo(RouteLogin)
	return err
}
