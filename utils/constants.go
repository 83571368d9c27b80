// File: utils/constants.go
package utils

import "time"

// SessionKeyPrefix is the prefix used for Redis session keys.
const SessionKeyPrefix = "session:"

// OTP policy.
const (
	OTPLength      = 6
	OTPMaxAttempts = 3
	OTPDefaultTTL  = 5 * time.Minute
)

// Employee listing limits.
const (
	MaxPageSize = 100
)
