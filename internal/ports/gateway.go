package ports

// TokenSource exposes the current bearer token. An empty token means no session.
type TokenSource interface {
	Token() (string, error)
}

// Navigator is the application's notion of "where the user is". The gateway uses it to send the
// user back to the login route when the backend rejects the session.
type Navigator interface {
	Location() string
	Navigate(path string)
}
