package models

import "time"

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

type User struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Email            string    `bson:"email" json:"email"`
	PasswordHash     string    `bson:"password_hash" json:"-"`
	Role             string    `bson:"role" json:"role"`
	ClassID          string    `bson:"class_id,omitempty" json:"classId,omitempty"`
	Points           int       `bson:"points" json:"points"`
	Badge            string    `bson:"badge" json:"badge"`
	Emoji            string    `bson:"emoji" json:"emoji"`
	LastTreasureDraw string    `bson:"last_treasure_draw,omitempty" json:"lastTreasureDraw,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updatedAt"`
}

// SyncBadge recomputes the denormalized badge fields from the point total.
func (u *User) SyncBadge() {
	rank := ResolveBadge(u.Points)
	u.Badge = rank.Name
	u.Emoji = rank.Emoji
}

type LeaderboardEntry struct {
	ID     string `bson:"_id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Points int    `bson:"points" json:"points"`
	Emoji  string `bson:"emoji" json:"emoji"`
}
