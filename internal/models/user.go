package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UID       string    `gorm:"uniqueIndex;not null" json:"uid"`
	Name      string    `json:"name"`
	Email     string    `gorm:"index" json:"email"`
	PhotoURL  string    `json:"photoURL"`
	CreatedAt time.Time `json:"createdAt"`
	LastLogin time.Time `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
