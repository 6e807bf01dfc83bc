package models

import (
	"time"
)

// Role IDs as seeded in the roles table.
const (
	RoleOfficer = 1
	RoleAdmin   = 2
	RolePolice  = 3
)

type User struct {
	UserID           int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	UserFname        string     `gorm:"column:user_fname" json:"user_fname"`
	UserLname        string     `gorm:"column:user_lname" json:"user_lname"`
	Email            string     `gorm:"column:email;unique" json:"email"`
	Password         string     `gorm:"column:password" json:"-"`
	Phone            *string    `gorm:"column:phone" json:"phone,omitempty"`
	RoleID           int        `gorm:"column:role_id" json:"role_id"`
	AssignedCenterID *string    `gorm:"column:assigned_center_id" json:"assigned_center_id,omitempty"`
	CreateAt         *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt         *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt         *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Role           Role           `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	AssignedCenter *PollingCenter `gorm:"foreignKey:AssignedCenterID" json:"assigned_center,omitempty"`
}

type Role struct {
	RoleID   int        `gorm:"primaryKey;column:role_id" json:"role_id"`
	Role     string     `gorm:"column:role" json:"role"`
	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (u *User) DisplayName() string {
	return u.UserFname + " " + u.UserLname
}

// TableName overrides
func (User) TableName() string {
	return "users"
}

func (Role) TableName() string {
	return "roles"
}
