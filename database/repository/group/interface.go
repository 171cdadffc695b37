package groupRepo

import (
	"context"

	"aceup/models"
)

// GroupRepository manages shared calendar groups and their membership.
type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	// GetByID returns nil (not an error) when the group does not exist.
	GetByID(ctx context.Context, groupID string) (*models.Group, error)
	// ListByMember returns every group the member belongs to.
	ListByMember(ctx context.Context, memberID string) ([]models.Group, error)
	AddMember(ctx context.Context, groupID string, member models.GroupMember) error
	RemoveMember(ctx context.Context, groupID, memberID string) error
	Delete(ctx context.Context, groupID string) error
}
