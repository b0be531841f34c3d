package absencesRepo

import (
	"context"
	"errors"
	"time"

	"pawplan/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new absence record and returns its ID.
func (r *mongoAbsenceRepo) Create(ctx context.Context, record models.AbsenceRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

// CreateMany inserts a batch of absence records, typically a vacation expansion.
func (r *mongoAbsenceRepo) CreateMany(ctx context.Context, records []models.AbsenceRecord) ([]string, error) {
	if len(records) == 0 {
		return nil, nil
	}
	docs := make([]interface{}, 0, len(records))
	ids := make([]string, 0, len(records))
	now := time.Now()
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.New().String()
		}
		records[i].CreatedAt = now
		docs = append(docs, records[i])
		ids = append(ids, records[i].ID)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetByID returns an absence record by its ID.
func (r *mongoAbsenceRepo) GetByID(ctx context.Context, id string) (*models.AbsenceRecord, error) {
	var record models.AbsenceRecord
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByPeriod returns the records whose original walk date falls in [from, to].
func (r *mongoAbsenceRepo) ListByPeriod(ctx context.Context, from, to time.Time) ([]models.AbsenceRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{
		"originalDate": bson.M{"$gte": from, "$lte": to},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.AbsenceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ConfirmReschedule attaches the chosen replacement slot to a record.
func (r *mongoAbsenceRepo) ConfirmReschedule(ctx context.Context, id, slotID string, date time.Time) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{
			"rescheduleSlotId": slotID,
			"rescheduleDate":   date,
			"confirmed":        true,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("absence record not found")
	}
	return nil
}
