package billingRepo

import (
	"context"
	"time"

	"pawplan/database"
	"pawplan/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BillingRepository serves activities, invoices and expenses.
type BillingRepository interface {
	ListActivitiesForMonth(ctx context.Context, year int, month time.Month) ([]models.Activity, error)
	ListClientActivitiesForMonth(ctx context.Context, clientID string, year int, month time.Month) ([]models.Activity, error)
	CreateInvoice(ctx context.Context, inv models.Invoice) (string, error)
	ListInvoicesForMonth(ctx context.Context, year int, month time.Month) ([]models.Invoice, error)
	ListUnpaidInvoices(ctx context.Context) ([]models.Invoice, error)
	RecordReminder(ctx context.Context, invoiceID string, at time.Time) error
	ListExpensesForMonth(ctx context.Context, year int, month time.Month) ([]models.Expense, error)
}

type mongoBillingRepo struct {
	activities *mongo.Collection
	invoices   *mongo.Collection
	expenses   *mongo.Collection
}

// NewMongoBillingRepo returns a new BillingRepository instance using MongoDB.
func NewMongoBillingRepo() BillingRepository {
	db := database.DB()
	return &mongoBillingRepo{
		activities: db.Collection("activities"),
		invoices:   db.Collection("invoices"),
		expenses:   db.Collection("expenses"),
	}
}

func monthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
