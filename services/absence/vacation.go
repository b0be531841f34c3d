package absence

import (
	"pawplan/models"
	"pawplan/utils"
)

// GenerateVacationAbsences expands a vacation period into one absence record
// per (regular assignment, date) pair falling inside the period. The walk
// weeks are iterated from the vacation start's ISO week through the end's
// week; vacations are always billed as package credits, so the policy is
// determined as if the client were on a package.
//
// An animal with two weekly slots over a two-week vacation yields up to four
// records.
func GenerateVacationAbsences(vac models.VacationPeriod, regular []models.RegularSlot) ([]models.AbsenceRecord, error) {
	var records []models.AbsenceRecord

	year, week := utils.ISOWeekOf(vac.StartDate)
	for {
		monday := utils.MondayOfISOWeek(year, week)
		if monday.After(vac.EndDate) {
			break
		}
		for _, slot := range regular {
			date, err := utils.DateOfWorkDay(year, week, slot.Day)
			if err != nil {
				return nil, err
			}
			if date.Before(vac.StartDate) || date.After(vac.EndDate) {
				continue
			}
			decision := DetermineCancellationPolicy(PolicyInput{
				OriginalDate:     date,
				CancellationTime: vac.StartDate,
				Type:             vac.Type,
				IsPackageClient:  true,
			})
			charge := CalculateCancellationCharge(ChargeInput{ChargePercent: decision.ChargePercent})
			records = append(records, models.AbsenceRecord{
				AnimalID:     vac.AnimalID,
				ClientID:     vac.ClientID,
				GroupID:      slot.GroupID,
				OriginalDate: date,
				Type:         vac.Type,
				Policy:       decision.Policy,
				PolicyReason: decision.Reason,
				ChargeAmount: charge,
				BasePrice:    DefaultBasePrice,
			})
		}
		year, week = utils.NextISOWeek(year, week)
	}
	return records, nil
}
