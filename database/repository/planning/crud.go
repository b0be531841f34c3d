package planningRepo

import (
	"context"
	"errors"
	"time"

	"pawplan/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListGroups returns every walk group template.
func (r *mongoPlanningRepo) ListGroups(ctx context.Context) ([]models.WalkGroup, error) {
	cursor, err := r.groups.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []models.WalkGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetSlotsForWeek returns the slot instances of one ISO week.
func (r *mongoPlanningRepo) GetSlotsForWeek(ctx context.Context, year, week int) ([]models.WeeklySlotInstance, error) {
	cursor, err := r.slots.Find(ctx, bson.M{"year": year, "week": week})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.WeeklySlotInstance
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// GetSlotsForWeeks returns the slot instances of several (year, week) pairs.
func (r *mongoPlanningRepo) GetSlotsForWeeks(ctx context.Context, weeks [][2]int) ([]models.WeeklySlotInstance, error) {
	if len(weeks) == 0 {
		return nil, nil
	}
	clauses := make([]bson.M, 0, len(weeks))
	for _, w := range weeks {
		clauses = append(clauses, bson.M{"year": w[0], "week": w[1]})
	}
	cursor, err := r.slots.Find(ctx, bson.M{"$or": clauses})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.WeeklySlotInstance
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// GetAssignmentsForWeek returns every assignment of one ISO week.
func (r *mongoPlanningRepo) GetAssignmentsForWeek(ctx context.Context, year, week int) ([]models.Assignment, error) {
	cursor, err := r.assignments.Find(ctx, bson.M{"year": year, "week": week})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// CreateAssignment inserts an assignment and bumps the slot occupancy inside
// one transaction, so interleaved writers cannot break the capacity count.
func (r *mongoPlanningRepo) CreateAssignment(ctx context.Context, a models.Assignment) (string, error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	session, err := r.assignments.Database().Client().StartSession()
	if err != nil {
		return "", err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.assignments.InsertOne(sc, a); err != nil {
			return nil, err
		}
		res, err := r.slots.UpdateOne(sc,
			bson.M{"id": a.SlotID},
			bson.M{"$inc": bson.M{"currentCount": 1}},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, errors.New("slot instance not found")
		}
		return nil, nil
	})
	if err != nil {
		return "", err
	}
	return a.ID, nil
}

// DeleteAssignment removes an assignment and releases its slot seat.
func (r *mongoPlanningRepo) DeleteAssignment(ctx context.Context, id string) error {
	session, err := r.assignments.Database().Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var a models.Assignment
		if err := r.assignments.FindOne(sc, bson.M{"id": id}).Decode(&a); err != nil {
			return nil, err
		}
		if _, err := r.assignments.DeleteOne(sc, bson.M{"id": id}); err != nil {
			return nil, err
		}
		_, err := r.slots.UpdateOne(sc,
			bson.M{"id": a.SlotID, "currentCount": bson.M{"$gt": 0}},
			bson.M{"$inc": bson.M{"currentCount": -1}},
		)
		return nil, err
	})
	return err
}

// GetRoutineByAnimal returns the animal's routine, or nil when it has none.
func (r *mongoPlanningRepo) GetRoutineByAnimal(ctx context.Context, animalID string) (*models.DogRoutine, error) {
	var routine models.DogRoutine
	err := r.routines.FindOne(ctx, bson.M{"animalId": animalID}).Decode(&routine)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &routine, nil
}

// ListActiveRoutines returns every active routine.
func (r *mongoPlanningRepo) ListActiveRoutines(ctx context.Context) ([]models.DogRoutine, error) {
	cursor, err := r.routines.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var routines []models.DogRoutine
	if err := cursor.All(ctx, &routines); err != nil {
		return nil, err
	}
	return routines, nil
}

// GetRegularSlots returns the animal's standing weekly bookings.
func (r *mongoPlanningRepo) GetRegularSlots(ctx context.Context, animalID string) ([]models.RegularSlot, error) {
	cursor, err := r.regularSlots.Find(ctx, bson.M{"animalId": animalID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.RegularSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// touchTimeout bounds snapshot reads used right before a write.
const touchTimeout = 5 * time.Second

// FreshSnapshot re-reads a week's slots and assignments immediately before a
// write is committed; suggestions computed earlier may rest on a stale view.
func (r *mongoPlanningRepo) FreshSnapshot(ctx context.Context, year, week int) ([]models.WeeklySlotInstance, []models.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, touchTimeout)
	defer cancel()
	slots, err := r.GetSlotsForWeek(ctx, year, week)
	if err != nil {
		return nil, nil, err
	}
	assignments, err := r.GetAssignmentsForWeek(ctx, year, week)
	if err != nil {
		return nil, nil, err
	}
	return slots, assignments, nil
}
