package main

import (
	"log"

	"github.com/BruksfildServices01/barber-finder/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-finder/internal/db"
	"github.com/BruksfildServices01/barber-finder/internal/models"
)

// Seeds the canonical amenity set. Safe to run repeatedly: it is a no-op once
// any amenities exist.
func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var count int64
	if err := db.Model(&models.Amenity{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to count amenities: %v", err)
	}
	if count > 0 {
		log.Println("amenities already seeded")
		return
	}

	amenities := []models.Amenity{
		{Icon: "wifi", Name: "Wi-Fi"},
		{Icon: "wheelchair-accessibility", Name: "Accessible"},
		{Icon: "car-outline", Name: "Parking"},
		{Icon: "human-handsup", Name: "Gender Neutral Toilets"},
		{Icon: "credit-card-outline", Name: "Credit Card"},
		{Icon: "air-conditioner", Name: "Air Conditioning"},
	}

	if err := db.Create(&amenities).Error; err != nil {
		log.Fatalf("failed to seed amenities: %v", err)
	}

	log.Printf("seeded %d amenities", len(amenities))
}
