package models

import "time"

// User defines a community member. Seeded users carry fixed ids ("u1",
// "pastor1"); the id never changes after creation.
type User struct {
	ID         string     `json:"id" example:"u1"`
	Name       string     `json:"name" example:"Joshua Aluko"`
	Role       RoleType   `json:"role" example:"MEMBER"`
	Avatar     string     `json:"avatar" example:"https://picsum.photos/seed/joshua/100/100"`
	Campus     *string    `json:"campus,omitempty" example:"Main Campus"`
	Email      *string    `json:"email,omitempty" example:"joshua@lightoncampus.app"`
	Bio        *string    `json:"bio,omitempty"`
	JoinedDate *time.Time `json:"joinedDate,omitempty"`
}
