package services

import (
	"testing"
	"time"

	"election-monitor-api/config"
	"election-monitor-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testFixtures is the cast seeded into every test database: one officer
// per center, an admin and a police user, three parties, two centers.
type testFixtures struct {
	Officer  Actor
	Officer2 Actor
	Admin    Actor
	Police   Actor
}

func setupTestDB(t *testing.T) testFixtures {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.Party{},
		&models.PollingCenter{},
		&models.User{},
		&models.SystemSetting{},
		&models.VoteSubmission{},
		&models.VoteCount{},
		&models.CorrectionRequest{},
		&models.Incident{},
		&models.IncidentAttachment{},
		&models.AuditLog{},
	))

	config.DB = db

	now := time.Now()
	parties := []models.Party{
		{PartyID: "PA", PartyName: "Party Alpha", Abbreviation: "PA", IsActive: true, CreateAt: now},
		{PartyID: "PB", PartyName: "Party Beta", Abbreviation: "PB", IsActive: true, CreateAt: now},
		{PartyID: "IND", PartyName: "Independent", Abbreviation: "IND", IsActive: true, CreateAt: now},
		{PartyID: "OLD", PartyName: "Dissolved Party", Abbreviation: "OLD", IsActive: false, CreateAt: now},
	}
	require.NoError(t, db.Create(&parties).Error)

	centers := []models.PollingCenter{
		{CenterID: "PC-001", CenterName: "Central High School", Thana: "Dhanmondi", District: "Dhaka", RegisteredVoters: 1000, CreateAt: now},
		{CenterID: "PC-002", CenterName: "Riverside College", Thana: "Kotwali", District: "Chattogram", RegisteredVoters: 850, CreateAt: now},
	}
	require.NoError(t, db.Create(&centers).Error)

	center1, center2 := "PC-001", "PC-002"
	users := []models.User{
		{UserFname: "Opu", UserLname: "Rahman", Email: "officer1@test", Password: "x", RoleID: models.RoleOfficer, AssignedCenterID: &center1, CreateAt: &now},
		{UserFname: "Rina", UserLname: "Akter", Email: "officer2@test", Password: "x", RoleID: models.RoleOfficer, AssignedCenterID: &center2, CreateAt: &now},
		{UserFname: "Anika", UserLname: "Chowdhury", Email: "admin@test", Password: "x", RoleID: models.RoleAdmin, CreateAt: &now},
		{UserFname: "Kamal", UserLname: "Hossain", Email: "police@test", Password: "x", RoleID: models.RolePolice, CreateAt: &now},
	}
	require.NoError(t, db.Create(&users).Error)

	return testFixtures{
		Officer:  Actor{UserID: users[0].UserID, Name: users[0].DisplayName(), RoleID: models.RoleOfficer, SourceIP: "10.0.0.1"},
		Officer2: Actor{UserID: users[1].UserID, Name: users[1].DisplayName(), RoleID: models.RoleOfficer, SourceIP: "10.0.0.2"},
		Admin:    Actor{UserID: users[2].UserID, Name: users[2].DisplayName(), RoleID: models.RoleAdmin, SourceIP: "10.0.0.3"},
		Police:   Actor{UserID: users[3].UserID, Name: users[3].DisplayName(), RoleID: models.RolePolice, SourceIP: "10.0.0.4"},
	}
}

func configDB(t *testing.T) *gorm.DB {
	t.Helper()
	require.NotNil(t, config.DB)
	return config.DB
}

func openGlobalWindow(t *testing.T, admin Actor) {
	t.Helper()
	require.NoError(t, SetSubmissionWindow(admin, "", true))
}
