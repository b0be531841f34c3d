package invoicing

import (
	"pawplan/models"
	"pawplan/utils"
)

// ponctuelWalksPerMonth is the assumed number of incidental walks booked by a
// client with no weekly commitment.
const ponctuelWalksPerMonth = 2

// EstimateMonthlyRevenue projects the recurring monthly revenue of a set of
// routines: the flat package price for each committed routine, and two
// incidental collective walks for each PONCTUEL one. A standalone estimation
// tool; it never feeds the invoicing path.
func EstimateMonthlyRevenue(routines []models.DogRoutine) (float64, error) {
	total := 0.0
	for _, r := range routines {
		if r.Type == models.Ponctuel {
			collective, err := models.DefaultWalkPrice(models.WalkCollective)
			if err != nil {
				return 0, err
			}
			total += ponctuelWalksPerMonth * collective
			continue
		}
		pkg, err := models.PackageFor(r.Type)
		if err != nil {
			return 0, err
		}
		total += pkg.MonthlyPrice
	}
	return utils.Round2(total), nil
}
