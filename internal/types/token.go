package types

import "github.com/google/uuid"

// TokenClaims carries the identity embedded in a bearer token at
// issuance time.
type TokenClaims struct {
	UserID uuid.UUID
}
