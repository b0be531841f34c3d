package billingRepo

import (
	"context"
	"errors"
	"time"

	"pawplan/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// ListActivitiesForMonth returns every activity dated inside one calendar month.
func (r *mongoBillingRepo) ListActivitiesForMonth(ctx context.Context, year int, month time.Month) ([]models.Activity, error) {
	start, end := monthRange(year, month)
	cursor, err := r.activities.Find(ctx, bson.M{
		"date": bson.M{"$gte": start, "$lt": end},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// ListClientActivitiesForMonth narrows the month's activities to one client.
func (r *mongoBillingRepo) ListClientActivitiesForMonth(ctx context.Context, clientID string, year int, month time.Month) ([]models.Activity, error) {
	start, end := monthRange(year, month)
	cursor, err := r.activities.Find(ctx, bson.M{
		"clientId": clientID,
		"date":     bson.M{"$gte": start, "$lt": end},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// CreateInvoice persists an invoice and returns its ID.
func (r *mongoBillingRepo) CreateInvoice(ctx context.Context, inv models.Invoice) (string, error) {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if _, err := r.invoices.InsertOne(ctx, inv); err != nil {
		return "", err
	}
	return inv.ID, nil
}

// ListInvoicesForMonth returns the invoices issued inside one calendar month.
func (r *mongoBillingRepo) ListInvoicesForMonth(ctx context.Context, year int, month time.Month) ([]models.Invoice, error) {
	start, end := monthRange(year, month)
	cursor, err := r.invoices.Find(ctx, bson.M{
		"issueDate": bson.M{"$gte": start, "$lt": end},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// ListUnpaidInvoices returns sent and overdue invoices, reminder candidates.
func (r *mongoBillingRepo) ListUnpaidInvoices(ctx context.Context) ([]models.Invoice, error) {
	cursor, err := r.invoices.Find(ctx, bson.M{
		"status": bson.M{"$in": []models.InvoiceStatus{models.InvoiceSent, models.InvoiceOverdue}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// RecordReminder bumps the reminder counter after a reminder was actually
// sent; computed-but-unsent reminders must not advance the escalation.
func (r *mongoBillingRepo) RecordReminder(ctx context.Context, invoiceID string, at time.Time) error {
	res, err := r.invoices.UpdateOne(ctx,
		bson.M{"id": invoiceID},
		bson.M{
			"$inc": bson.M{"reminderCount": 1},
			"$set": bson.M{"lastReminderAt": at, "status": models.InvoiceOverdue},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("invoice not found")
	}
	return nil
}

// ListExpensesForMonth returns the expenses recorded inside one calendar month.
func (r *mongoBillingRepo) ListExpensesForMonth(ctx context.Context, year int, month time.Month) ([]models.Expense, error) {
	start, end := monthRange(year, month)
	cursor, err := r.expenses.Find(ctx, bson.M{
		"date": bson.M{"$gte": start, "$lt": end},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var expenses []models.Expense
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}
