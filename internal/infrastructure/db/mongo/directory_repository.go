package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
)

const usersCollection = "users"

// Directory is a Mongo-backed implementation of the directory port. The
// roster is read once at construction — the core contract is an immutable,
// ordered list per role, so there is no reason to re-query per lookup.
type Directory struct {
	members []domain.User
	bearers []domain.User
	admins  []domain.User
}

// rosterUser is the stored shape of a roster record. A dedicated seq field
// preserves partition order; the club id is plain data because the source
// roster repeats id values within the bearer partition.
type rosterUser struct {
	Seq        int         `bson:"seq"`
	ClubID     string      `bson:"club_id"`
	RID        string      `bson:"rid,omitempty"`
	Username   string      `bson:"username,omitempty"`
	Password   string      `bson:"password"`
	Role       domain.Role `bson:"role"`
	Name       string      `bson:"name"`
	Email      string      `bson:"email"`
	Phone      string      `bson:"phone"`
	Position   string      `bson:"position,omitempty"`
	Department string      `bson:"department,omitempty"`
	JoinDate   string      `bson:"join_date"`
	Attendance int         `bson:"attendance,omitempty"`
	DPPPoints  int         `bson:"dpp_points,omitempty"`
	Avatar     string      `bson:"avatar"`
}

// NewDirectory loads all three partitions and returns an in-memory directory
// over them.
func NewDirectory(ctx context.Context, db *mongo.Database) (*Directory, error) {
	d := &Directory{}
	var err error
	if d.members, err = loadPartition(ctx, db, domain.RoleMember); err != nil {
		return nil, err
	}
	if d.bearers, err = loadPartition(ctx, db, domain.RoleBearer); err != nil {
		return nil, err
	}
	if d.admins, err = loadPartition(ctx, db, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return d, nil
}

func loadPartition(ctx context.Context, db *mongo.Database, role domain.Role) ([]domain.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cur, err := db.Collection(usersCollection).Find(ctx, bson.M{"role": role}, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s partition: %w", role, err)
	}
	defer cur.Close(ctx)

	var users []domain.User
	for cur.Next(ctx) {
		var ru rosterUser
		if err := cur.Decode(&ru); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", role, err)
		}
		users = append(users, domain.User{
			ID:         ru.ClubID,
			RID:        ru.RID,
			Username:   ru.Username,
			Password:   ru.Password,
			Role:       ru.Role,
			Name:       ru.Name,
			Email:      ru.Email,
			Phone:      ru.Phone,
			Position:   ru.Position,
			Department: ru.Department,
			JoinDate:   ru.JoinDate,
			Attendance: ru.Attendance,
			DPPPoints:  ru.DPPPoints,
			Avatar:     ru.Avatar,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s partition: %w", role, err)
	}
	return users, nil
}

func (d *Directory) Members() []domain.User { return clone(d.members) }
func (d *Directory) Bearers() []domain.User { return clone(d.bearers) }
func (d *Directory) Admins() []domain.User  { return clone(d.admins) }

func (d *Directory) All() []domain.User {
	all := make([]domain.User, 0, len(d.members)+len(d.bearers)+len(d.admins))
	all = append(all, d.members...)
	all = append(all, d.bearers...)
	all = append(all, d.admins...)
	return all
}

func (d *Directory) ByRole(role domain.Role) []domain.User {
	switch role {
	case domain.RoleMember:
		return d.Members()
	case domain.RoleBearer:
		return d.Bearers()
	case domain.RoleAdmin:
		return d.Admins()
	default:
		return nil
	}
}

func clone(users []domain.User) []domain.User {
	out := make([]domain.User, len(users))
	copy(out, users)
	return out
}
