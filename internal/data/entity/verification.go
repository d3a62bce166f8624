package entity

import (
	"github.com/google/uuid"
)

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"
)

type VerificationRequest struct {
	BaseSimple
	UserID      uuid.UUID          `db:"user_id"`
	DocumentURL *string            `db:"document_url"`
	Note        *string            `db:"note"`
	Status      VerificationStatus `db:"status"`
}
