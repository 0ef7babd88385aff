package constants

// NATS Subjects
const (
	// Payments Service
	SubjectCreditsReconciled = "credits.reconciled"
)
