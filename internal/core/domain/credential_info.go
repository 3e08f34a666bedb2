package domain

import "time"

// CredentialInfo describes a stored static credential without its secret
// material.
type CredentialInfo struct {
	ID        string
	Type      string
	Kind      CredentialKind
	CreatedAt time.Time
	UpdatedAt time.Time
}
