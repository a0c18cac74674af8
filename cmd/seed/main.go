package main

import (
	"log"
	"os"
	"time"

	"memberdesk/internal/database"
	"memberdesk/internal/domain"
)

func ptr(s string) *string { return &s }

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "club.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(&domain.Submission{}, &domain.Member{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM pending_members")
	db.Exec("DELETE FROM members")

	log.Println("Creating members...")
	members := []domain.Member{
		{FirstName: "Matti", LastName: "Korhonen", City: "Tampere", Email: "matti.korhonen@example.fi", WCAID: ptr("2014KORH01"), BirthDate: "1996-04-12"},
		{FirstName: "Laura", LastName: "Nieminen", City: "Turku", Email: "laura.nieminen@example.fi", BirthDate: "2002-11-30"},
		{FirstName: "Juho", LastName: "Mäkelä", City: "Oulu", Email: "juho.makela@example.fi", WCAID: ptr("2018MAKE02"), BirthDate: "2005-07-08"},
	}
	for i := range members {
		db.Create(&members[i])
	}

	log.Println("Creating pending submissions...")
	now := time.Now()
	pending := []domain.Submission{
		{FirstName: "Anna", LastName: "Virtanen", City: "Helsinki", Email: "anna.virtanen@example.fi", BirthDate: "2000-01-01", SubmittedAt: now.Add(-48 * time.Hour)},
		{FirstName: "Eero", LastName: "Laine", City: "Jyväskylä", Email: "eero.laine@example.fi", WCAID: ptr("2021LAIN01"), BirthDate: "2008-03-22", SubmittedAt: now.Add(-2 * time.Hour)},
	}
	for i := range pending {
		db.Create(&pending[i])
	}

	log.Printf("Seeded %d members and %d pending submissions", len(members), len(pending))
	log.Println("Admin credentials come from ADMIN_USERNAME / ADMIN_PASSWORD_HASH;")
	log.Println("generate a hash with: go run ./cmd/hashpw <password>")
}
