package auth

const (
	ContextKeySubject = "auth_subject"
	ContextKeyRole    = "auth_role"

	headerAuthorization = "Authorization"

	bearerScheme    = "bearer"
	authHeaderParts = 2
)

const (
	msgAuthenticationRequired  = "authentication required"
	msgInsufficientRole        = "insufficient role"
	msgUnexpectedSigningMethod = "unexpected signing method: %v"
	msgTokenParseFailed        = "failed to parse token"
	msgMissingRequiredClaims   = "token is missing required claims"

	// Body returned when a blacklisted token is presented, kept exactly as
	// clients already parse it.
	msgRevokedError   = "Forbidden"
	msgRevokedMessage = "Token has expired. Please log in again"
)
