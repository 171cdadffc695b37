package eventRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aceup/database"
	"aceup/models"
)

// MongoEventRepo implements EventRepository using MongoDB.
type MongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo constructs a new instance of MongoEventRepo.
func NewMongoEventRepo() EventRepository {
	db := database.MongoClient.Database("aceup")
	return &MongoEventRepo{coll: db.Collection("events")}
}

func (repo *MongoEventRepo) Insert(ctx context.Context, event *models.CalendarEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("error inserting event %s: %w", event.ID, err)
	}
	return nil
}

func (repo *MongoEventRepo) GetByID(ctx context.Context, eventID string) (*models.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var event models.CalendarEvent
	if err := repo.coll.FindOne(ctx, bson.M{"id": eventID}).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching event with id %s: %w", eventID, err)
	}
	return &event, nil
}

func (repo *MongoEventRepo) ListByGroup(ctx context.Context, groupID string) ([]models.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"groupId": groupID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing events for group %s: %w", groupID, err)
	}
	defer cursor.Close(ctx)

	var events []models.CalendarEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("error decoding events: %w", err)
	}
	return events, nil
}

func (repo *MongoEventRepo) Delete(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"id": eventID}); err != nil {
		return fmt.Errorf("error deleting event %s: %w", eventID, err)
	}
	return nil
}
