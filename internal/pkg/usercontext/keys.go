package usercontext

// Shared Locals/session keys used across controllers and middlewares
const (
	AuthKey          = "authenticated"
	KeyUserID        = "user_id"
	KeyUsername      = "username"
	KeyEmail         = "email"
	KeyIsAdmin       = "isAdmin"
	KeyFromProtected = "from_protected"
	KeyUserContext   = "USER_CONTEXT"

	// KeyResetToken holds the reset link token between the link visit and the password form
	KeyResetToken = "reset_token"
	// KeyResetEmail holds the address of the last reset request for the resend button
	KeyResetEmail = "reset_email"
)
