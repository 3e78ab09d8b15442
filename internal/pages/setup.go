package pages

import (
	"log"

	"github.com/MercerDigital/MD-Backend/internal/db"
)

func Init() {
	// Ensure the pages schema exists first
	if err := db.EnsureSchema(db.DB, "pages"); err != nil {
		log.Fatal("Failed to create pages schema: ", err)
	}

	if err := db.DB.AutoMigrate(&Artifact{}, &TestimonialRow{}, &NearbyAreaRow{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
