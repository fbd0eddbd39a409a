package domain

import "github.com/google/uuid"

// IDGenerator produces unique ids for boards, columns and cards. Tests swap
// in deterministic generators.
type IDGenerator func() string

// NewID is the default generator.
func NewID() string {
	return uuid.NewString()
}
