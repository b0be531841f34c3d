package absence

import (
	"pawplan/models"
	"pawplan/utils"
)

// DefaultBasePrice is the walk price assumed when no custom price is supplied.
const DefaultBasePrice = 30.0

// ChargeInput carries the pricing context of one cancellation.
type ChargeInput struct {
	WalkType      models.WalkType `json:"walkType"`
	CustomPrice   *float64        `json:"customPrice,omitempty"`
	ChargePercent float64         `json:"chargePercent"`
}

// BasePrice returns the price the charge percentage applies to.
func BasePrice(in ChargeInput) float64 {
	if in.CustomPrice != nil {
		return *in.CustomPrice
	}
	return DefaultBasePrice
}

// CalculateCancellationCharge computes the amount actually billed for a
// cancellation, rounded to the cent. charge(0%) is exactly 0 and charge(100%)
// is exactly the base price.
func CalculateCancellationCharge(in ChargeInput) float64 {
	return utils.Round2(BasePrice(in) * in.ChargePercent / 100)
}
