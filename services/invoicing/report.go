package invoicing

import (
	"sort"
	"time"

	"pawplan/models"
	"pawplan/utils"
)

const topClientCount = 5

// GenerateMonthlyReport builds the financial summary for one calendar month.
// Revenue counts paid invoices only; draft, sent and overdue invoices are
// excluded. The per-service breakdown is computed from raw activity totals
// and is independent of invoice status.
func GenerateMonthlyReport(
	year int,
	month time.Month,
	invoices []models.Invoice,
	activities []models.Activity,
	expenses []models.Expense,
) (models.MonthlyReport, error) {
	report := models.MonthlyReport{
		Year:             year,
		Month:            int(month),
		RevenueByService: make(map[models.WalkType]float64),
	}

	revenue := 0.0
	perClient := make(map[string]float64)
	var clientOrder []string
	for _, inv := range invoices {
		if inv.Status != models.InvoicePaid {
			continue
		}
		if inv.IssueDate.Year() != year || inv.IssueDate.Month() != month {
			continue
		}
		revenue += inv.Total
		report.InvoiceCount++
		if _, seen := perClient[inv.ClientID]; !seen {
			clientOrder = append(clientOrder, inv.ClientID)
		}
		perClient[inv.ClientID] += inv.Total
	}

	perService := make(map[models.WalkType]float64)
	for _, act := range activities {
		if act.Status != models.ActivityCompleted {
			continue
		}
		if act.Date.Year() != year || act.Date.Month() != month {
			continue
		}
		unit := act.UnitPrice
		if unit == 0 {
			def, err := models.DefaultWalkPrice(act.Type)
			if err != nil {
				return models.MonthlyReport{}, err
			}
			unit = def
		}
		qty := act.Quantity
		if qty <= 0 {
			qty = 1
		}
		perService[act.Type] += unit * float64(qty)
	}
	for service, amount := range perService {
		report.RevenueByService[service] = utils.Round2(amount)
	}

	totalExpenses := 0.0
	for _, e := range expenses {
		if e.Date.Year() == year && e.Date.Month() == month {
			totalExpenses += e.Amount
		}
	}

	top := make([]models.ClientRevenue, 0, len(clientOrder))
	for _, id := range clientOrder {
		top = append(top, models.ClientRevenue{ClientID: id, Revenue: utils.Round2(perClient[id])})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Revenue > top[j].Revenue })
	if len(top) > topClientCount {
		top = top[:topClientCount]
	}

	report.Revenue = utils.Round2(revenue)
	report.TotalExpenses = utils.Round2(totalExpenses)
	report.Profit = utils.Round2(report.Revenue - report.TotalExpenses)
	report.TopClients = top
	return report, nil
}
