package absence

import (
	"time"

	"pawplan/models"
	"pawplan/utils"
)

// Hour thresholds of the late-cancellation scale. Boundary values belong to
// the lower-charge bucket.
const (
	freeCancellationHours    = 24
	partialCancellationHours = 6
)

// PolicyInput is everything the policy decision depends on.
type PolicyInput struct {
	OriginalDate     time.Time          `json:"originalDate"`     // scheduled walk time
	CancellationTime time.Time          `json:"cancellationTime"` // when the client cancelled
	Type             models.AbsenceType `json:"type"`
	IsPackageClient  bool               `json:"isPackageClient"`
}

// PolicyDecision is the billing treatment assigned to a cancellation.
type PolicyDecision struct {
	Policy        models.CancellationPolicy `json:"policy"`
	ChargePercent float64                   `json:"chargePercent"`
	Reason        string                    `json:"reason"`
}

// DetermineCancellationPolicy applies the cancellation rules in business
// priority order; the first matching rule wins. The order is the policy:
// business-caused exceptions beat medical reschedules beat package credit
// beat the hour-based scale. Total over well-formed input.
func DetermineCancellationPolicy(in PolicyInput) PolicyDecision {
	// Rule 1: not attributable to the client, regardless of timing or package.
	if in.Type == models.AbsenceWalkerAbsent || in.Type == models.AbsenceExtremeWeather {
		return PolicyDecision{
			Policy:        models.PolicyFullRefund,
			ChargePercent: 0,
			Reason:        "not attributable to client",
		}
	}

	// Rule 2: medical grounds get a free reschedule offer.
	if in.Type == models.AbsenceSickDog || in.Type == models.AbsenceVetAppointment {
		return PolicyDecision{
			Policy:        models.PolicyRescheduled,
			ChargePercent: 0,
			Reason:        "medical reschedule offered",
		}
	}

	// Rule 3: package clients absorb the walk into their monthly forfait.
	if in.IsPackageClient {
		return PolicyDecision{
			Policy:        models.PolicyPackageCredit,
			ChargePercent: 0,
			Reason:        "credited against monthly package",
		}
	}

	// Rule 4: hour-based scale. Whole hours, truncated toward zero; a
	// cancellation logged after the walk counts as less than 6 hours.
	h := utils.WholeHoursUntil(in.OriginalDate, in.CancellationTime)
	switch {
	case h >= freeCancellationHours:
		return PolicyDecision{
			Policy:        models.PolicyFullRefund,
			ChargePercent: 0,
			Reason:        "cancelled 24 hours or more before the walk",
		}
	case h >= partialCancellationHours:
		return PolicyDecision{
			Policy:        models.PolicyPartialCharge,
			ChargePercent: 50,
			Reason:        "cancelled between 6 and 24 hours before the walk",
		}
	default:
		return PolicyDecision{
			Policy:        models.PolicyFullCharge,
			ChargePercent: 100,
			Reason:        "cancelled less than 6 hours before the walk",
		}
	}
}
