package groupRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"aceup/database"
	"aceup/models"
)

// MongoGroupRepo implements GroupRepository using MongoDB.
type MongoGroupRepo struct {
	coll *mongo.Collection
}

// NewMongoGroupRepo constructs a new instance of MongoGroupRepo.
func NewMongoGroupRepo() GroupRepository {
	db := database.MongoClient.Database("aceup")
	return &MongoGroupRepo{coll: db.Collection("groups")}
}

func (repo *MongoGroupRepo) Create(ctx context.Context, group *models.Group) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, group); err != nil {
		return fmt.Errorf("error creating group %s: %w", group.ID, err)
	}
	return nil
}

func (repo *MongoGroupRepo) GetByID(ctx context.Context, groupID string) (*models.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var group models.Group
	if err := repo.coll.FindOne(ctx, bson.M{"id": groupID}).Decode(&group); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching group with id %s: %w", groupID, err)
	}
	return &group, nil
}

func (repo *MongoGroupRepo) ListByMember(ctx context.Context, memberID string) ([]models.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"members.memberId": memberID})
	if err != nil {
		return nil, fmt.Errorf("error listing groups for member %s: %w", memberID, err)
	}
	defer cursor.Close(ctx)

	var groups []models.Group
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("error decoding groups: %w", err)
	}
	return groups, nil
}

func (repo *MongoGroupRepo) AddMember(ctx context.Context, groupID string, member models.GroupMember) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$addToSet": bson.M{"members": member}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": groupID}, update)
	if err != nil {
		return fmt.Errorf("error adding member %s to group %s: %w", member.MemberID, groupID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("group %s not found", groupID)
	}
	return nil
}

func (repo *MongoGroupRepo) RemoveMember(ctx context.Context, groupID, memberID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$pull": bson.M{"members": bson.M{"memberId": memberID}}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": groupID}, update)
	if err != nil {
		return fmt.Errorf("error removing member %s from group %s: %w", memberID, groupID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("group %s not found", groupID)
	}
	return nil
}

func (repo *MongoGroupRepo) Delete(ctx context.Context, groupID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"id": groupID}); err != nil {
		return fmt.Errorf("error deleting group %s: %w", groupID, err)
	}
	return nil
}
