package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
)

// DefaultSessionKey is the named key the session record lives under.
const DefaultSessionKey = "rotaract_user"

// SessionRepository persists the single session record as a JSON blob under
// one named key. No TTL: like the browser storage it replaces, the record
// lives until logout deletes it.
type SessionRepository struct {
	client *redis.Client
	key    string
}

// NewSessionRepository wraps the given Redis client. An empty key selects
// DefaultSessionKey.
func NewSessionRepository(client *redis.Client, key string) *SessionRepository {
	if key == "" {
		key = DefaultSessionKey
	}
	return &SessionRepository{client: client, key: key}
}

// persistedUser is the stored shape of a session record. Password travels
// with the snapshot so a strict restore can re-validate against the
// directory; domain.User hides it from JSON, so the record keeps its own
// mapping.
type persistedUser struct {
	ID         string      `json:"id"`
	RID        string      `json:"rid,omitempty"`
	Username   string      `json:"username,omitempty"`
	Password   string      `json:"password"`
	Role       domain.Role `json:"role"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	Position   string      `json:"position,omitempty"`
	Department string      `json:"department,omitempty"`
	JoinDate   string      `json:"join_date"`
	Attendance int         `json:"attendance,omitempty"`
	DPPPoints  int         `json:"dpp_points,omitempty"`
	Avatar     string      `json:"avatar"`
}

func (r *SessionRepository) Load(ctx context.Context) (*domain.User, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var p persistedUser
	if err := json.Unmarshal(raw, &p); err != nil {
		// Corrupt blob: treat as no session rather than failing startup.
		return nil, fmt.Errorf("decode session: %w: %w", domain.ErrSessionCorrupt, err)
	}
	return p.toDomain(), nil
}

func (r *SessionRepository) Save(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(fromDomain(user))
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func fromDomain(u *domain.User) persistedUser {
	return persistedUser{
		ID:         u.ID,
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
	}
}

func (p *persistedUser) toDomain() *domain.User {
	return &domain.User{
		ID:         p.ID,
		RID:        p.RID,
		Username:   p.Username,
		Password:   p.Password,
		Role:       p.Role,
		Name:       p.Name,
		Email:      p.Email,
		Phone:      p.Phone,
		Position:   p.Position,
		Department: p.Department,
		JoinDate:   p.JoinDate,
		Attendance: p.Attendance,
		DPPPoints:  p.DPPPoints,
		Avatar:     p.Avatar,
	}
}
