package models

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
}

// UserClient links a client-role user to at most one Client record.
type UserClient struct {
	UserID uint `gorm:"primaryKey" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
