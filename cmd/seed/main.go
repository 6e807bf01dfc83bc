// cmd/seed seeds a fresh deployment with roles, demo users, the party
// catalog and polling centers. Existing rows are left untouched, so the
// tool is safe to run more than once.
package main

import (
	"log"
	"os"
	"time"

	"election-monitor-api/config"
	"election-monitor-api/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()

	if err := config.DB.AutoMigrate(
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
	); err != nil {
		log.Fatal("Migration failed:", err)
	}

	seedRoles()
	seedParties()
	seedCenters()
	seedUsers()

	log.Println("Seeding complete")
}

func seedRoles() {
	roles := []models.Role{
		{RoleID: models.RoleOfficer, Role: "officer"},
		{RoleID: models.RoleAdmin, Role: "admin"},
		{RoleID: models.RolePolice, Role: "police"},
	}
	for _, role := range roles {
		var existing models.Role
		err := config.DB.First(&existing, "role_id = ?", role.RoleID).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatal("Role lookup failed:", err)
		}
		now := time.Now()
		role.CreateAt = &now
		if err := config.DB.Create(&role).Error; err != nil {
			log.Fatal("Role seed failed:", err)
		}
		log.Printf("Seeded role %s", role.Role)
	}
}

func seedParties() {
	parties := []models.Party{
		{PartyID: "PA", PartyName: "Party Alpha", Abbreviation: "PA", IsActive: true},
		{PartyID: "PB", PartyName: "Party Beta", Abbreviation: "PB", IsActive: true},
		{PartyID: "IND", PartyName: "Independent", Abbreviation: "IND", IsActive: true},
	}
	for _, party := range parties {
		var existing models.Party
		err := config.DB.First(&existing, "party_id = ?", party.PartyID).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatal("Party lookup failed:", err)
		}
		party.CreateAt = time.Now()
		if err := config.DB.Create(&party).Error; err != nil {
			log.Fatal("Party seed failed:", err)
		}
		log.Printf("Seeded party %s", party.PartyID)
	}
}

func seedCenters() {
	centers := []models.PollingCenter{
		{CenterID: "PC-001", CenterName: "Central High School", Thana: "Dhanmondi", District: "Dhaka", RegisteredVoters: 1000},
		{CenterID: "PC-002", CenterName: "Riverside College", Thana: "Kotwali", District: "Chattogram", RegisteredVoters: 850},
		{CenterID: "PC-003", CenterName: "North Community Hall", Thana: "Boalia", District: "Rajshahi", RegisteredVoters: 620},
	}
	for _, center := range centers {
		var existing models.PollingCenter
		err := config.DB.First(&existing, "center_id = ?", center.CenterID).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatal("Center lookup failed:", err)
		}
		center.CreateAt = time.Now()
		if err := config.DB.Create(&center).Error; err != nil {
			log.Fatal("Center seed failed:", err)
		}
		log.Printf("Seeded polling center %s", center.CenterID)
	}
}

func seedUsers() {
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "changeme123"
		log.Println("SEED_PASSWORD not set, using default password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Password hash failed:", err)
	}

	center1 := "PC-001"
	users := []models.User{
		{UserFname: "Opu", UserLname: "Rahman", Email: "officer@example.org", RoleID: models.RoleOfficer, AssignedCenterID: &center1},
		{UserFname: "Anika", UserLname: "Chowdhury", Email: "admin@example.org", RoleID: models.RoleAdmin},
		{UserFname: "Kamal", UserLname: "Hossain", Email: "police@example.org", RoleID: models.RolePolice},
	}
	for _, user := range users {
		var existing models.User
		err := config.DB.First(&existing, "email = ?", user.Email).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatal("User lookup failed:", err)
		}
		now := time.Now()
		user.Password = string(hash)
		user.CreateAt = &now
		if err := config.DB.Create(&user).Error; err != nil {
			log.Fatal("User seed failed:", err)
		}
		log.Printf("Seeded user %s", user.Email)
	}
}
