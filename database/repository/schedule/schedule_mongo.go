package scheduleRepo

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

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new instance of MongoScheduleRepo.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database("aceup")
	return &MongoScheduleRepo{coll: db.Collection("schedules")}
}

func (repo *MongoScheduleRepo) Upsert(ctx context.Context, weekly models.WeeklyAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	weekly.UpdatedAt = time.Now().UTC()
	filter := bson.M{"memberId": weekly.MemberID}
	update := bson.M{"$set": weekly}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting schedule for member %s: %w", weekly.MemberID, err)
	}
	return nil
}

func (repo *MongoScheduleRepo) GetByMemberID(ctx context.Context, memberID string) (*models.WeeklyAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var weekly models.WeeklyAvailability
	if err := repo.coll.FindOne(ctx, bson.M{"memberId": memberID}).Decode(&weekly); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching schedule for member %s: %w", memberID, err)
	}
	return &weekly, nil
}

func (repo *MongoScheduleRepo) GetByMemberIDs(ctx context.Context, memberIDs []string) ([]models.WeeklyAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"memberId": bson.M{"$in": memberIDs}})
	if err != nil {
		return nil, fmt.Errorf("error fetching schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var weeklies []models.WeeklyAvailability
	if err := cursor.All(ctx, &weeklies); err != nil {
		return nil, fmt.Errorf("error decoding schedules: %w", err)
	}
	return weeklies, nil
}

func (repo *MongoScheduleRepo) Delete(ctx context.Context, memberID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"memberId": memberID}); err != nil {
		return fmt.Errorf("error deleting schedule for member %s: %w", memberID, err)
	}
	return nil
}
