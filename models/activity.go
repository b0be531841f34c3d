package models

import "time"

// Client is a customer of the company.
type Client struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Animal is a dog belonging to a client.
type Animal struct {
	ID       string `bson:"id" json:"id"`
	ClientID string `bson:"clientId" json:"clientId"`
	Name     string `bson:"name" json:"name"`
	Breed    string `bson:"breed,omitempty" json:"breed,omitempty"`
}

// Activity is one billable service occurrence: a walk, a visit, a boarding day.
type Activity struct {
	ID        string         `bson:"id" json:"id"`
	AnimalID  string         `bson:"animalId" json:"animalId"`
	ClientID  string         `bson:"clientId" json:"clientId"`
	Type      WalkType       `bson:"type" json:"type"`
	Date      time.Time      `bson:"date" json:"date"`
	UnitPrice float64        `bson:"unitPrice,omitempty" json:"unitPrice,omitempty"` // 0 means "use the default price table"
	Quantity  int            `bson:"quantity" json:"quantity"`
	Status    ActivityStatus `bson:"status" json:"status"`
}

// Expense is a company outgoing recorded for the monthly report.
type Expense struct {
	ID       string    `bson:"id" json:"id"`
	Category string    `bson:"category" json:"category"`
	Amount   float64   `bson:"amount" json:"amount"`
	Date     time.Time `bson:"date" json:"date"`
	Note     string    `bson:"note,omitempty" json:"note,omitempty"`
}
