package models

import "time"

// Invoice is a persisted invoice as stored by the billing repository.
type Invoice struct {
	ID             string        `bson:"id" json:"id"`
	ClientID       string        `bson:"clientId" json:"clientId"`
	Status         InvoiceStatus `bson:"status" json:"status"`
	Subtotal       float64       `bson:"subtotal" json:"subtotal"`
	TaxAmount      float64       `bson:"taxAmount" json:"taxAmount"`
	Total          float64       `bson:"total" json:"total"`
	IssueDate      time.Time     `bson:"issueDate" json:"issueDate"`
	DueDate        time.Time     `bson:"dueDate" json:"dueDate"`
	ReminderCount  int           `bson:"reminderCount" json:"reminderCount"`
	LastReminderAt *time.Time    `bson:"lastReminderAt,omitempty" json:"lastReminderAt,omitempty"`
}

// InvoiceLineItem is one computed line of an invoice: a (animal, service)
// group billed either per walk or as a flat monthly package.
type InvoiceLineItem struct {
	AnimalID    string   `json:"animalId"`
	Service     WalkType `json:"service"`
	Description string   `json:"description"`
	Quantity    int      `json:"quantity"`
	UnitPrice   float64  `json:"unitPrice"`
	Total       float64  `json:"total"`
	Package     bool     `json:"package"` // true when the line is a flat monthly forfait
}

// InvoiceCalculation is the derived, non-persisted result of invoicing a
// client for a billing period. Persisting it is the caller's job.
type InvoiceCalculation struct {
	ClientID  string            `json:"clientId"`
	Lines     []InvoiceLineItem `json:"lines"`
	Subtotal  float64           `json:"subtotal"`
	TaxRate   float64           `json:"taxRate"`
	TaxAmount float64           `json:"taxAmount"`
	Total     float64           `json:"total"`
	IssueDate time.Time         `json:"issueDate"`
	DueDate   time.Time         `json:"dueDate"`
}

// ReminderLevel is the escalation stage of a payment reminder.
type ReminderLevel string

const (
	ReminderFirst  ReminderLevel = "first"
	ReminderSecond ReminderLevel = "second"
	ReminderFinal  ReminderLevel = "final"
)

// PaymentReminder is a computed reminder message for one overdue invoice.
type PaymentReminder struct {
	InvoiceID   string        `json:"invoiceId"`
	ClientID    string        `json:"clientId"`
	Level       ReminderLevel `json:"level"`
	DaysOverdue int           `json:"daysOverdue"`
	Amount      float64       `json:"amount"`
	Message     string        `json:"message"`
}
