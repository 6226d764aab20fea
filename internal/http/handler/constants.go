package handler

const (
	jsonKeyError   = "error"
	jsonKeyMessage = "message"

	paramStudentID = "id"
)

const (
	msgContentTypeJSONRequired = "Content-Type must be application/json"
	msgInvalidRequestBody      = "invalid request body"
	msgInvalidCredentials      = "invalid credentials"
	msgPasswordProcessFail     = "failed to process password"
	msgGenerateTokenFail       = "failed to generate token"
	msgUsernameAlreadyExists   = "username already exists"
	msgInvalidStudentID        = "invalid student id"

	msgNoTokenProvided  = "No token provided."
	msgLogoutSuccessful = "Logout successful."
	msgTokenExpired     = "Token has expired."
	msgInvalidToken     = "Invalid or malformed token."
)
