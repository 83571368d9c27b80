package auth

const (
	msgOTPRequested    = "If an account exists with this email, an OTP has been sent."
	msgNoOTP           = "No OTP requested for this email"
	msgOTPExpired      = "OTP has expired. Please request a new one."
	msgTooManyTries    = "Too many failed attempts. Please request a new OTP."
	msgInvalidOTP      = "Invalid OTP. %d attempts remaining."
	msgUserNotFound    = "User not found"
	msgLoginRequired   = "You must be logged in to perform this action"
	msgNoPermission    = "You do not have permission to perform this action"
	msgEmailRequired   = "Email is required"
	MsgLoginSuccessful = "Login successful"
)
