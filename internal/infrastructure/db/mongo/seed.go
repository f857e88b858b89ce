package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/ports"
)

// SeedRoster replaces the users collection with the contents of src,
// assigning seq numbers that preserve each partition's order. Intended for
// the seed command, not the running service.
func SeedRoster(ctx context.Context, db *mongo.Database, src ports.Directory) error {
	coll := db.Collection(usersCollection)
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear roster: %w", err)
	}

	docs := make([]interface{}, 0)
	for seq, u := range src.All() {
		docs = append(docs, rosterUser{
			Seq:        seq,
			ClubID:     u.ID,
			RID:        u.RID,
			Username:   u.Username,
			Password:   u.Password,
			Role:       u.Role,
			Name:       u.Name,
			Email:      u.Email,
			Phone:      u.Phone,
			Position:   u.Position,
			Department: u.Department,
			JoinDate:   u.JoinDate,
			Attendance: u.Attendance,
			DPPPoints:  u.DPPPoints,
			Avatar:     u.Avatar,
		})
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert roster: %w", err)
	}
	return nil
}
