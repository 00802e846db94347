package auth

const (
	MsgLoggedIn             = "Logged in."
	MsgNotVerified          = "Email not yet verified."
	MsgVerifySuccess        = "Verification complete."
	MsgRegisterSuccess      = "Thank you for registering. A verification link was sent to your email."
	MsgRegisterEmailFailed  = "Thank you for registering. The verification email could not be delivered; please request a new link."
	MsgInvalidToken         = "Invalid token."
	MsgInvalidResetToken    = "Invalid or expired token."
	MsgResetSent            = "A password reset link was sent to your email."
	MsgResetEmailFailed     = "Failed to send the password reset email."
	MsgPasswordResetSuccess = "Password was reset successfully. You can now login."
	MsgUserExists           = "User already exists."
	MsgUserNotFound         = "User not found."
	MsgFmtFindUserByEmail   = "find user by email: %w"
	MsgFmtFindUser          = "find user: %w"
)
