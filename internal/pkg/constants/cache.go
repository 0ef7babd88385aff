package constants

import "time"

// Redis key formats
const (
	KeyUserCredits = "user:credits:%s" // Format: user:credits:{external_id}
)

// Cache TTLs
const (
	UserCreditsTTL = 5 * time.Minute
)
