package ports

// CredentialService hashes and verifies passwords and issues signed,
// time-limited session tokens carrying the user's identity. It performs no
// I/O beyond CPU-bound hashing.
type CredentialService interface {
	HashPassword(plain string) (string, error)
	VerifyPassword(plain, hash string) bool
	IssueToken(userID string) (string, error)
	// VerifyToken returns the embedded user id, domain.ErrTokenExpired when
	// past expiration, or domain.ErrTokenInvalid for any signature or format
	// failure.
	VerifyToken(token string) (string, error)
}
