package absencesRepo

import (
	"context"
	"time"

	"pawplan/database"
	"pawplan/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AbsenceRepository stores the immutable absence history. Records are created
// once per cancellation event and only the reschedule confirmation may be
// attached afterwards.
type AbsenceRepository interface {
	Create(ctx context.Context, record models.AbsenceRecord) (string, error)
	CreateMany(ctx context.Context, records []models.AbsenceRecord) ([]string, error)
	GetByID(ctx context.Context, id string) (*models.AbsenceRecord, error)
	ListByPeriod(ctx context.Context, from, to time.Time) ([]models.AbsenceRecord, error)
	ConfirmReschedule(ctx context.Context, id, slotID string, date time.Time) error
}

type mongoAbsenceRepo struct {
	coll *mongo.Collection
}

// NewMongoAbsenceRepo returns a new AbsenceRepository instance using MongoDB.
func NewMongoAbsenceRepo() AbsenceRepository {
	return &mongoAbsenceRepo{coll: database.DB().Collection("absences")}
}
