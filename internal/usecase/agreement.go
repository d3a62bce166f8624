package usecase

import (
	"time"

	"github.com/joshijay655/justdostuff/internal/dto/request"
)

// AgreementRecord holds the consent timestamps captured at booking time.
// A nil pointer means the agreement was not accepted.
type AgreementRecord struct {
	TosAcceptedAt    *time.Time
	WaiverAcceptedAt *time.Time
	NdaAcceptedAt    *time.Time
}

// resolveAgreements validates the consent checkboxes against what the
// experience requires and stamps accepted ones with the current time.
// ToS and waiver are always mandatory; NDA only when the experience
// demands it. An NDA checked for an experience that doesn't require one
// is recorded anyway.
func resolveAgreements(req *request.CreateBookingRequest, requiresNDA bool, now time.Time) (*AgreementRecord, error) {
	if !req.TosAccepted || !req.WaiverAccepted {
		return nil, ErrMissingConsent
	}
	if requiresNDA && !req.NdaAccepted {
		return nil, ErrMissingConsent
	}

	record := &AgreementRecord{
		TosAcceptedAt:    &now,
		WaiverAcceptedAt: &now,
	}
	if req.NdaAccepted {
		record.NdaAcceptedAt = &now
	}

	return record, nil
}
