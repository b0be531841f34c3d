package invoicing

import (
	"fmt"
	"time"

	"pawplan/models"
)

// DefaultReminderIntervalDays is the minimum gap between reminders for the
// same invoice.
const DefaultReminderIntervalDays = 7

// GeneratePaymentReminders computes the reminder messages due for a set of
// invoices. An invoice gets a reminder only when overdue and when at least
// intervalDays have passed since the previous reminder (or since the due
// date, when none was ever sent). The level escalates strictly with the
// number of reminders already sent: first, second, then final.
func GeneratePaymentReminders(invoices []models.Invoice, now time.Time, intervalDays int) []models.PaymentReminder {
	if intervalDays <= 0 {
		intervalDays = DefaultReminderIntervalDays
	}

	var reminders []models.PaymentReminder
	for _, inv := range invoices {
		if inv.Status == models.InvoicePaid || inv.Status == models.InvoiceDraft {
			continue
		}
		if !now.After(inv.DueDate) {
			continue
		}

		reference := inv.DueDate
		if inv.LastReminderAt != nil {
			reference = *inv.LastReminderAt
		}
		daysSince := int(now.Sub(reference).Hours() / 24)
		if daysSince < intervalDays {
			continue
		}

		daysOverdue := int(now.Sub(inv.DueDate).Hours() / 24)
		level := reminderLevel(inv.ReminderCount)
		reminders = append(reminders, models.PaymentReminder{
			InvoiceID:   inv.ID,
			ClientID:    inv.ClientID,
			Level:       level,
			DaysOverdue: daysOverdue,
			Amount:      inv.Total,
			Message:     reminderMessage(level, inv, daysOverdue),
		})
	}
	return reminders
}

func reminderLevel(priorReminders int) models.ReminderLevel {
	switch {
	case priorReminders <= 0:
		return models.ReminderFirst
	case priorReminders == 1:
		return models.ReminderSecond
	default:
		return models.ReminderFinal
	}
}

func reminderMessage(level models.ReminderLevel, inv models.Invoice, daysOverdue int) string {
	switch level {
	case models.ReminderFirst:
		return fmt.Sprintf(
			"Bonjour, un petit rappel : la facture %s de %.2f € est arrivée à échéance il y a %d jours. Merci de procéder au règlement quand vous le pourrez.",
			inv.ID, inv.Total, daysOverdue)
	case models.ReminderSecond:
		return fmt.Sprintf(
			"Relance : la facture %s de %.2f € reste impayée depuis %d jours. Merci de régulariser sous 7 jours.",
			inv.ID, inv.Total, daysOverdue)
	default:
		return fmt.Sprintf(
			"Dernière relance : la facture %s de %.2f € est impayée depuis %d jours. Sans règlement sous 48h, les promenades seront suspendues et le dossier transmis au recouvrement.",
			inv.ID, inv.Total, daysOverdue)
	}
}
