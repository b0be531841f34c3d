package planningRepo

import (
	"context"

	"pawplan/database"
	"pawplan/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PlanningRepository serves the planning snapshot (groups, weekly slot
// instances, assignments, routines) and applies the planner's mutations.
type PlanningRepository interface {
	ListGroups(ctx context.Context) ([]models.WalkGroup, error)
	GetSlotsForWeek(ctx context.Context, year, week int) ([]models.WeeklySlotInstance, error)
	GetSlotsForWeeks(ctx context.Context, weeks [][2]int) ([]models.WeeklySlotInstance, error)
	GetAssignmentsForWeek(ctx context.Context, year, week int) ([]models.Assignment, error)
	CreateAssignment(ctx context.Context, a models.Assignment) (string, error)
	DeleteAssignment(ctx context.Context, id string) error
	GetRoutineByAnimal(ctx context.Context, animalID string) (*models.DogRoutine, error)
	ListActiveRoutines(ctx context.Context) ([]models.DogRoutine, error)
	GetRegularSlots(ctx context.Context, animalID string) ([]models.RegularSlot, error)
	FreshSnapshot(ctx context.Context, year, week int) ([]models.WeeklySlotInstance, []models.Assignment, error)
}

type mongoPlanningRepo struct {
	groups       *mongo.Collection
	slots        *mongo.Collection
	assignments  *mongo.Collection
	routines     *mongo.Collection
	regularSlots *mongo.Collection
}

// NewMongoPlanningRepo returns a new PlanningRepository instance using MongoDB.
func NewMongoPlanningRepo() PlanningRepository {
	db := database.DB()
	return &mongoPlanningRepo{
		groups:       db.Collection("walk_groups"),
		slots:        db.Collection("slot_instances"),
		assignments:  db.Collection("assignments"),
		routines:     db.Collection("routines"),
		regularSlots: db.Collection("regular_slots"),
	}
}
