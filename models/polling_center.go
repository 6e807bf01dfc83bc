package models

import "time"

// PollingCenter is a physical voting location. Vote tallies are submitted
// once per center; WindowOpen is the per-center override set by a
// correction approval, the election-wide gate lives in SystemSetting.
type PollingCenter struct {
	CenterID         string     `gorm:"primaryKey;column:center_id" json:"center_id"`
	CenterName       string     `gorm:"column:center_name" json:"center_name"`
	Thana            string     `gorm:"column:thana" json:"thana"`
	District         string     `gorm:"column:district" json:"district"`
	RegisteredVoters int        `gorm:"column:registered_voters" json:"registered_voters"`
	WindowOpen       bool       `gorm:"column:window_open" json:"window_open"`
	CreateAt         time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt         *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`

	// Relations
	Submissions []VoteSubmission `gorm:"foreignKey:CenterID" json:"submissions,omitempty"`
}

// SystemSetting is a single-row table of election-wide flags.
type SystemSetting struct {
	SettingID        int        `gorm:"primaryKey;column:setting_id" json:"setting_id"`
	SubmissionWindow bool       `gorm:"column:submission_window" json:"submission_window"`
	UpdatedBy        *int       `gorm:"column:updated_by" json:"updated_by,omitempty"`
	UpdateAt         *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
}

// TableName overrides
func (PollingCenter) TableName() string {
	return "polling_centers"
}

func (SystemSetting) TableName() string {
	return "system_settings"
}
