package models

// WalkGroup is the immutable template for a recurring weekly walk slot:
// a weekday, a time block, a sector and a default capacity. Many weekly
// instances reference the same group.
type WalkGroup struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Day             WorkDay   `bson:"day" json:"day"`
	Block           TimeBlock `bson:"block" json:"block"`
	DefaultCapacity int       `bson:"defaultCapacity" json:"defaultCapacity"`
	Sector          string    `bson:"sector" json:"sector"`
	WalkMinutes     int       `bson:"walkMinutes" json:"walkMinutes"`
	PickupMinutes   int       `bson:"pickupMinutes" json:"pickupMinutes"`
	ReturnMinutes   int       `bson:"returnMinutes" json:"returnMinutes"`
}

// WeeklySlotInstance is one concrete week's occurrence of a WalkGroup.
// EffectiveCapacity may override the group default; CurrentCount is the
// number of assignments currently attached.
type WeeklySlotInstance struct {
	ID                string    `bson:"id" json:"id"`
	GroupID           string    `bson:"groupId" json:"groupId"`
	Year              int       `bson:"year" json:"year"`
	Week              int       `bson:"week" json:"week"` // ISO week number
	Day               WorkDay   `bson:"day" json:"day"`
	Block             TimeBlock `bson:"block" json:"block"`
	EffectiveCapacity int       `bson:"effectiveCapacity" json:"effectiveCapacity"`
	CurrentCount      int       `bson:"currentCount" json:"currentCount"`
	Blocked           bool      `bson:"blocked" json:"blocked"`
	BlockReason       string    `bson:"blockReason,omitempty" json:"blockReason,omitempty"`
}

// Assignment links an animal to a weekly slot instance. An animal holds at
// most one assignment per slot instance.
type Assignment struct {
	ID        string  `bson:"id" json:"id"`
	SlotID    string  `bson:"slotId" json:"slotId"`
	AnimalID  string  `bson:"animalId" json:"animalId"`
	Year      int     `bson:"year" json:"year"`
	Week      int     `bson:"week" json:"week"`
	Day       WorkDay `bson:"day" json:"day"`
	Confirmed bool    `bson:"confirmed" json:"confirmed"`
	Completed bool    `bson:"completed" json:"completed"`
}

// RegularSlot is an animal's standing weekly booking, used to expand
// vacation periods into per-date absences.
type RegularSlot struct {
	AnimalID string    `bson:"animalId" json:"animalId"`
	GroupID  string    `bson:"groupId" json:"groupId"`
	Day      WorkDay   `bson:"day" json:"day"`
	Block    TimeBlock `bson:"block" json:"block"`
}
