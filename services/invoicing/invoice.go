package invoicing

import (
	"fmt"
	"time"

	"pawplan/models"
	"pawplan/utils"
)

// DefaultPaymentDelayDays is applied when the caller does not set a delay.
const DefaultPaymentDelayDays = 30

// packageFloor is the share of the expected monthly walks under which a
// package client is billed per walk instead of the flat forfait.
const packageFloor = 0.75

// InvoiceOptions tune one invoice computation.
type InvoiceOptions struct {
	ApplyPackageDiscount bool      `json:"applyPackageDiscount"`
	TaxRatePercent       float64   `json:"taxRatePercent"`
	PaymentDelayDays     int       `json:"paymentDelayDays"`
	IssueDate            time.Time `json:"issueDate"`
}

type lineKey struct {
	animalID string
	service  models.WalkType
}

// CalculateInvoice turns a client's completed activities for a billing period
// into an itemized invoice. Activities are grouped by (animal, service type);
// a group falls on the package path when the animal's routine elected package
// billing, the service is the collective walk, and package discounts are
// enabled. On that path the group is billed as the flat monthly forfait when
// the actual walk count reaches 75% of the routine's expected monthly walks,
// and at the package's discounted per-walk rate otherwise.
func CalculateInvoice(
	clientID string,
	activities []models.Activity,
	routines map[string]models.DogRoutine,
	opts InvoiceOptions,
) (models.InvoiceCalculation, error) {
	if opts.PaymentDelayDays <= 0 {
		opts.PaymentDelayDays = DefaultPaymentDelayDays
	}
	if opts.IssueDate.IsZero() {
		opts.IssueDate = time.Now()
	}

	type group struct {
		activities []models.Activity
		quantity   int
	}
	groups := make(map[lineKey]*group)
	var order []lineKey

	for _, act := range activities {
		if act.Status != models.ActivityCompleted {
			continue
		}
		key := lineKey{animalID: act.AnimalID, service: act.Type}
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		qty := act.Quantity
		if qty <= 0 {
			qty = 1
		}
		g.activities = append(g.activities, act)
		g.quantity += qty
	}

	calc := models.InvoiceCalculation{
		ClientID:  clientID,
		TaxRate:   opts.TaxRatePercent,
		IssueDate: opts.IssueDate,
		DueDate:   opts.IssueDate.AddDate(0, 0, opts.PaymentDelayDays),
	}

	for _, key := range order {
		g := groups[key]
		line, err := buildLine(key, g.activities, g.quantity, routines, opts)
		if err != nil {
			return models.InvoiceCalculation{}, err
		}
		calc.Lines = append(calc.Lines, line)
		calc.Subtotal += line.Total
	}

	calc.Subtotal = utils.Round2(calc.Subtotal)
	calc.TaxAmount = utils.Round2(calc.Subtotal * opts.TaxRatePercent / 100)
	calc.Total = utils.Round2(calc.Subtotal + calc.TaxAmount)
	return calc, nil
}

func buildLine(
	key lineKey,
	acts []models.Activity,
	quantity int,
	routines map[string]models.DogRoutine,
	opts InvoiceOptions,
) (models.InvoiceLineItem, error) {
	routine, hasRoutine := routines[key.animalID]
	packagePath := opts.ApplyPackageDiscount &&
		hasRoutine &&
		routine.PackageBilling &&
		routine.Type != models.Ponctuel &&
		key.service == models.WalkCollective

	if packagePath {
		pkg, err := models.PackageFor(routine.Type)
		if err != nil {
			return models.InvoiceLineItem{}, err
		}
		expected := float64(pkg.WalksPerWeek) * models.AverageWeeksPerMonth
		if float64(quantity) >= packageFloor*expected {
			return models.InvoiceLineItem{
				AnimalID:    key.animalID,
				Service:     key.service,
				Description: fmt.Sprintf("Forfait mensuel %s", routine.Type),
				Quantity:    1,
				UnitPrice:   pkg.MonthlyPrice,
				Total:       pkg.MonthlyPrice,
				Package:     true,
			}, nil
		}
		return models.InvoiceLineItem{
			AnimalID:    key.animalID,
			Service:     key.service,
			Description: fmt.Sprintf("Promenades au tarif forfait %s", routine.Type),
			Quantity:    quantity,
			UnitPrice:   pkg.PerWalkPrice,
			Total:       utils.Round2(pkg.PerWalkPrice * float64(quantity)),
			Package:     false,
		}, nil
	}

	unit := acts[0].UnitPrice
	if unit == 0 {
		def, err := models.DefaultWalkPrice(key.service)
		if err != nil {
			return models.InvoiceLineItem{}, err
		}
		unit = def
	}
	return models.InvoiceLineItem{
		AnimalID:    key.animalID,
		Service:     key.service,
		Description: string(key.service),
		Quantity:    quantity,
		UnitPrice:   unit,
		Total:       utils.Round2(unit * float64(quantity)),
		Package:     false,
	}, nil
}

// GenerateMonthlyInvoices applies CalculateInvoice to every client for one
// calendar month. Clients with zero completed activities in the month are
// skipped; a zero-line invoice is never emitted.
func GenerateMonthlyInvoices(
	clients []models.Client,
	activities []models.Activity,
	routines map[string]models.DogRoutine,
	year int,
	month time.Month,
	opts InvoiceOptions,
) ([]models.InvoiceCalculation, error) {
	var invoices []models.InvoiceCalculation
	for _, client := range clients {
		var monthActs []models.Activity
		for _, act := range activities {
			if act.ClientID != client.ID || act.Status != models.ActivityCompleted {
				continue
			}
			if act.Date.Year() == year && act.Date.Month() == month {
				monthActs = append(monthActs, act)
			}
		}
		if len(monthActs) == 0 {
			continue
		}
		calc, err := CalculateInvoice(client.ID, monthActs, routines, opts)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, calc)
	}
	return invoices, nil
}
