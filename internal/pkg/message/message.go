package message

const (
	InvalidInput       = "Invalid input."
	InvalidCredentials = "Invalid credentials."
	Unauthorized       = "Authentication required."
	ServerError        = "Something went wrong."
	EnvErrFmt          = "environment variable is not set: %s"
)
