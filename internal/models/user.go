package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:200;not null" json:"-"` // bcrypt hash
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
