package uistate

// Authenticator checks sign-in credentials.
type Authenticator interface {
	Authenticate(username, password string) bool
}

// DemoAuthenticator compares against one fixed username and password.
//
// It exists so the dashboard can show a sign-in screen in demo mode. It is
// not a security boundary: the credentials are configuration, nothing is
// hashed, and no API route is gated on the signed-in flag.
type DemoAuthenticator struct {
	Username string
	Password string
}

func (d DemoAuthenticator) Authenticate(username, password string) bool {
	if d.Username == "" {
		return false
	}
	return username == d.Username && password == d.Password
}
