package constants

const (
	// SessionCookieName is the name of the cookie carrying the session token.
	SessionCookieName = "todolog_session"

	// SessionKeyUsername is the session key holding the authenticated username.
	SessionKeyUsername = "username"

	// ContextKeyUsername is the gin context key set by the auth middleware.
	ContextKeyUsername = "username"
)
