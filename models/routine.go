package models

import "fmt"

// DogRoutine is an animal's recurring weekly preference: how often it should
// be walked, on which days, in which time block and sector. At most one
// routine exists per animal.
type DogRoutine struct {
	ID             string      `bson:"id" json:"id"`
	AnimalID       string      `bson:"animalId" json:"animalId"`
	ClientID       string      `bson:"clientId" json:"clientId"`
	Type           RoutineType `bson:"type" json:"type"`
	PreferredDays  []WorkDay   `bson:"preferredDays,omitempty" json:"preferredDays,omitempty"`
	PreferredBlock TimeBlock   `bson:"preferredBlock,omitempty" json:"preferredBlock,omitempty"`
	Sector         string      `bson:"sector,omitempty" json:"sector,omitempty"`
	WalkType       WalkType    `bson:"walkType" json:"walkType"`
	PackageBilling bool        `bson:"packageBilling" json:"packageBilling"` // flat monthly forfait instead of per-walk
	Active         bool        `bson:"active" json:"active"`
}

// MonthlyPackage is the monetisation of a routine's frequency commitment:
// a flat monthly price and the equivalent discounted per-walk rate.
type MonthlyPackage struct {
	Routine      RoutineType `json:"routine"`
	WalksPerWeek int         `json:"walksPerWeek"`
	MonthlyPrice float64     `json:"monthlyPrice"`
	PerWalkPrice float64     `json:"perWalkPrice"`
}

// AverageWeeksPerMonth converts a weekly commitment into a monthly walk count.
const AverageWeeksPerMonth = 4.33

var monthlyPackages = map[RoutineType]MonthlyPackage{
	RoutineR1:   {Routine: RoutineR1, WalksPerWeek: 1, MonthlyPrice: 120, PerWalkPrice: 27.71},
	RoutineR2:   {Routine: RoutineR2, WalksPerWeek: 2, MonthlyPrice: 220, PerWalkPrice: 25.40},
	RoutineR3:   {Routine: RoutineR3, WalksPerWeek: 3, MonthlyPrice: 300, PerWalkPrice: 23.09},
	RoutinePlus: {Routine: RoutinePlus, WalksPerWeek: 4, MonthlyPrice: 380, PerWalkPrice: 21.94},
}

// PackageFor returns the monthly package for a routine type. PONCTUEL has no
// package; asking for one is a caller error.
func PackageFor(r RoutineType) (MonthlyPackage, error) {
	p, ok := monthlyPackages[r]
	if !ok {
		return MonthlyPackage{}, fmt.Errorf("no monthly package for routine type %q", string(r))
	}
	return p, nil
}
