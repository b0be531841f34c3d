package models

import "time"

// AbsenceRecord is the immutable historical fact of one cancelled walk,
// together with the billing policy that was computed for it. Only the
// reschedule confirmation may be attached after creation.
type AbsenceRecord struct {
	ID               string             `bson:"id" json:"id"`
	AnimalID         string             `bson:"animalId" json:"animalId"`
	ClientID         string             `bson:"clientId" json:"clientId"`
	GroupID          string             `bson:"groupId" json:"groupId"`
	OriginalDate     time.Time          `bson:"originalDate" json:"originalDate"`
	Type             AbsenceType        `bson:"type" json:"type"`
	Policy           CancellationPolicy `bson:"policy" json:"policy"`
	PolicyReason     string             `bson:"policyReason" json:"policyReason"`
	ChargeAmount     float64            `bson:"chargeAmount" json:"chargeAmount"`
	BasePrice        float64            `bson:"basePrice" json:"basePrice"`
	RescheduleSlotID string             `bson:"rescheduleSlotId,omitempty" json:"rescheduleSlotId,omitempty"`
	RescheduleDate   *time.Time         `bson:"rescheduleDate,omitempty" json:"rescheduleDate,omitempty"`
	Confirmed        bool               `bson:"confirmed" json:"confirmed"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

// VacationPeriod is a client-declared date range expected to expand into one
// AbsenceRecord per affected regular assignment date.
type VacationPeriod struct {
	ID        string      `bson:"id" json:"id"`
	AnimalID  string      `bson:"animalId" json:"animalId"`
	ClientID  string      `bson:"clientId" json:"clientId"`
	StartDate time.Time   `bson:"startDate" json:"startDate"`
	EndDate   time.Time   `bson:"endDate" json:"endDate"`
	Type      AbsenceType `bson:"type" json:"type"`
}

// ClientAbsenceCount pairs a client with their absence frequency.
type ClientAbsenceCount struct {
	ClientID string `json:"clientId"`
	Count    int    `json:"count"`
}

// AbsenceStats aggregates a set of absence records for the dashboard.
type AbsenceStats struct {
	Total         int                        `json:"total"`
	ByType        map[AbsenceType]int        `json:"byType"`
	ByPolicy      map[CancellationPolicy]int `json:"byPolicy"`
	ByWeekday     map[WorkDay]int            `json:"byWeekday"`
	LostRevenue   float64                    `json:"lostRevenue"`
	TotalCharged  float64                    `json:"totalCharged"`
	TopClients    []ClientAbsenceCount       `json:"topClients"`
}
