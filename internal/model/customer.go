package model

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID uuid.UUID
	// Display name, e.g. company or household name.
	Name string
	// Phone number as entered; matching uses the normalized digits.
	Phone string
	// Digits-only form of Phone, kept in sync by the repository.
	PhoneDigits string
	Email       string
	Address     string
	CreatedAt   *time.Time
}

// IdentifyResult is the payload of the phone-identify endpoint.
type IdentifyResult struct {
	Identified bool
	Customer   *Customer
}
