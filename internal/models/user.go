// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User is the identity record created on registration.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

// UserSummary is the public subset of a user embedded in profile responses.
type UserSummary struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// TableName maps UserSummary reads onto the users table.
func (UserSummary) TableName() string {
	return "users"
}
