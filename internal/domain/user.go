// Package domain contains the core data types for the travel planner API.
// This package has zero external dependencies beyond uuid and decimal and is
// imported by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an application user. There is no authentication in this service;
// the frontend keeps a local "current user" and creates one on demand.
// Email is unique across all users.
type User struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	CreatedAt time.Time
}
