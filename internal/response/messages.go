package response

// MsgCode is a typed message code enum for consistent user-facing text.
type MsgCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	MsgInvalidCredentials MsgCode = "INVALID_CREDENTIALS"
	MsgLoginRequired      MsgCode = "LOGIN_REQUIRED"
	MsgLoggedOut          MsgCode = "LOGGED_OUT"

	// ─── Authorization ─────────────────────────────────────────────────
	MsgTeacherRequired MsgCode = "TEACHER_REQUIRED"

	// ─── Signup validation ─────────────────────────────────────────────
	MsgFieldsRequired   MsgCode = "FIELDS_REQUIRED"
	MsgPasswordMismatch MsgCode = "PASSWORD_MISMATCH"
	MsgPasswordTooShort MsgCode = "PASSWORD_TOO_SHORT"
	MsgUsernameExists   MsgCode = "USERNAME_EXISTS"
	MsgSignupSuccess    MsgCode = "SIGNUP_SUCCESS"

	// ─── Pages ─────────────────────────────────────────────────────────
	MsgNoClassAssigned MsgCode = "NO_CLASS_ASSIGNED"

	// ─── Server ────────────────────────────────────────────────────────
	MsgDatabaseError     MsgCode = "DATABASE_ERROR"
	MsgRateLimitExceeded MsgCode = "RATE_LIMIT_EXCEEDED"
	MsgInternal          MsgCode = "INTERNAL_ERROR"
)

// GetMessage returns the human-readable text for a given message code.
func GetMessage(code MsgCode) string {
	switch code {
	case MsgInvalidCredentials:
		return "Invalid username or password"
	case MsgLoginRequired:
		return "Please login first"
	case MsgLoggedOut:
		return "Logged out successfully"
	case MsgTeacherRequired:
		return "Access denied. Teacher role required."
	case MsgFieldsRequired:
		return "Username and password are required"
	case MsgPasswordMismatch:
		return "Passwords do not match"
	case MsgPasswordTooShort:
		return "Password must be at least 6 characters"
	case MsgUsernameExists:
		return "Username already exists"
	case MsgSignupSuccess:
		return "Account created successfully! Please login."
	case MsgNoClassAssigned:
		return "No class assigned to you"
	case MsgDatabaseError:
		return "Database error, please try again"
	case MsgRateLimitExceeded:
		return "Too many attempts, please try again later"
	case MsgInternal:
		return "Something went wrong"
	default:
		return "Something went wrong"
	}
}
