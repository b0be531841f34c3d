package absence

import (
	"sort"

	"pawplan/models"
	"pawplan/utils"
)

const topClientCount = 5

// CalculateAbsenceStats aggregates a set of absence records: counts by type,
// policy and business weekday, revenue lost to refunded/rescheduled/credited
// walks, the total actually charged, and the five clients with the most
// absences. Weekend dates contribute to no weekday bucket. Client ties keep
// first-encountered order.
func CalculateAbsenceStats(records []models.AbsenceRecord) models.AbsenceStats {
	stats := models.AbsenceStats{
		Total:     len(records),
		ByType:    make(map[models.AbsenceType]int),
		ByPolicy:  make(map[models.CancellationPolicy]int),
		ByWeekday: make(map[models.WorkDay]int),
	}

	lost := 0.0
	charged := 0.0
	counts := make(map[string]int)
	var clientOrder []string

	for _, r := range records {
		stats.ByType[r.Type]++
		stats.ByPolicy[r.Policy]++
		if day, ok := models.WorkDayFromTime(r.OriginalDate); ok {
			stats.ByWeekday[day]++
		}

		base := r.BasePrice
		if base == 0 {
			base = DefaultBasePrice
		}
		switch r.Policy {
		case models.PolicyFullRefund, models.PolicyRescheduled, models.PolicyPackageCredit:
			lost += base - r.ChargeAmount
		}
		charged += r.ChargeAmount

		if _, seen := counts[r.ClientID]; !seen {
			clientOrder = append(clientOrder, r.ClientID)
		}
		counts[r.ClientID]++
	}

	top := make([]models.ClientAbsenceCount, 0, len(clientOrder))
	for _, id := range clientOrder {
		top = append(top, models.ClientAbsenceCount{ClientID: id, Count: counts[id]})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > topClientCount {
		top = top[:topClientCount]
	}

	stats.LostRevenue = utils.Round2(lost)
	stats.TotalCharged = utils.Round2(charged)
	stats.TopClients = top
	return stats
}
