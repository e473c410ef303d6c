package model

import (
	"time"

	"gorm.io/gorm"
)

// Team is a row of the teams table.
type Team struct {
	TeamName  string    `gorm:"primaryKey;column:team_name;type:varchar(255)" json:"team_name"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName maps the struct to the teams table.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate bumps the updated_at timestamp.
func (t *Team) BeforeUpdate(_ *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}
