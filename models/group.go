package models

import "time"

// GroupMember identifies one member of a shared calendar group.
type GroupMember struct {
	MemberID    string `bson:"memberId" json:"memberId"`
	DisplayName string `bson:"displayName" json:"displayName"`
}

// Group is a shared calendar group whose members' schedules are queried
// together.
type Group struct {
	ID        string        `bson:"id" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Members   []GroupMember `bson:"members" json:"members"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}

// MemberIDs returns the ids of all members, in stored order.
func (g Group) MemberIDs() []string {
	ids := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		ids = append(ids, m.MemberID)
	}
	return ids
}
