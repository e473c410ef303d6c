package model

import (
	"time"

	"gorm.io/gorm"
)

// User is a row of the users table. Every user belongs to exactly one team.
type User struct {
	UserID    string    `gorm:"primaryKey;column:user_id;type:varchar(255)" json:"user_id"`
	Username  string    `gorm:"column:username;type:varchar(255);not null" json:"username"`
	TeamName  string    `gorm:"column:team_name;type:varchar(255);not null;index:idx_users_team_name;index:idx_users_team_active,priority:1" json:"team_name"`
	IsActive  bool      `gorm:"column:is_active;type:boolean;not null;default:true;index:idx_users_team_active,priority:2" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName maps the struct to the users table.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate bumps the updated_at timestamp.
func (u *User) BeforeUpdate(_ *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
