package clientsRepo

import (
	"context"

	"pawplan/database"
	"pawplan/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ClientRepository serves client and animal records.
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*models.Client, error)
	List(ctx context.Context) ([]models.Client, error)
	GetAnimal(ctx context.Context, id string) (*models.Animal, error)
	ListAnimalsByClient(ctx context.Context, clientID string) ([]models.Animal, error)
}

type mongoClientRepo struct {
	clients *mongo.Collection
	animals *mongo.Collection
}

// NewMongoClientRepo returns a new ClientRepository instance using MongoDB.
func NewMongoClientRepo() ClientRepository {
	db := database.DB()
	return &mongoClientRepo{
		clients: db.Collection("clients"),
		animals: db.Collection("animals"),
	}
}
