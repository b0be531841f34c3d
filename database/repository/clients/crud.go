package clientsRepo

import (
	"context"

	"pawplan/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetByID returns a client by its ID.
func (r *mongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	if err := r.clients.FindOne(ctx, bson.M{"id": id}).Decode(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

// List returns every client.
func (r *mongoClientRepo) List(ctx context.Context) ([]models.Client, error) {
	cursor, err := r.clients.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// GetAnimal returns an animal by its ID.
func (r *mongoClientRepo) GetAnimal(ctx context.Context, id string) (*models.Animal, error) {
	var animal models.Animal
	if err := r.animals.FindOne(ctx, bson.M{"id": id}).Decode(&animal); err != nil {
		return nil, err
	}
	return &animal, nil
}

// ListAnimalsByClient returns all animals belonging to a client.
func (r *mongoClientRepo) ListAnimalsByClient(ctx context.Context, clientID string) ([]models.Animal, error) {
	cursor, err := r.animals.Find(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var animals []models.Animal
	if err := cursor.All(ctx, &animals); err != nil {
		return nil, err
	}
	return animals, nil
}
