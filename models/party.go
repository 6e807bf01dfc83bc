package models

import "time"

// Party is reference data for the ballot: vote breakdowns are validated
// against the set of active parties.
type Party struct {
	PartyID      string     `gorm:"primaryKey;column:party_id" json:"party_id"`
	PartyName    string     `gorm:"column:party_name" json:"party_name"`
	Abbreviation string     `gorm:"column:abbreviation" json:"abbreviation"`
	Symbol       *string    `gorm:"column:symbol" json:"symbol,omitempty"`
	IsActive     bool       `gorm:"column:is_active" json:"is_active"`
	CreateAt     time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
}

func (Party) TableName() string {
	return "parties"
}
