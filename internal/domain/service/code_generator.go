package service

// CodeGenerator produces short random codes for OTP and email verification.
type CodeGenerator interface {
	// Generate returns exactly length lowercase hex characters sourced from
	// a cryptographically secure generator.
	Generate(length int) (string, error)
}
