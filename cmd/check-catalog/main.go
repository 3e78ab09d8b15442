package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MercerDigital/MD-Backend/internal/catalog"
	"github.com/MercerDigital/MD-Backend/internal/pages"
	"github.com/joho/godotenv"
)

// Prints what a generation run would target, grouped by county, so the catalog
// can be reviewed before running cmd/generate. No database required.
func main() {
	godotenv.Load(".env.local")

	catalogDir := os.Getenv("CATALOG_DIR")
	if catalogDir == "" {
		catalogDir = "internal/catalog/data"
	}

	cat, err := catalog.Load(catalogDir)
	if err != nil {
		log.Fatalf("Catalog failed validation: %v", err)
	}

	fmt.Printf("Catalog OK: %d services × %d locations = %d pages\n\n",
		len(cat.Services()), len(cat.Locations()), len(cat.Services())*len(cat.Locations()))

	byCounty := make(map[string][]catalog.Location)
	var counties []string
	for _, loc := range cat.Locations() {
		if _, seen := byCounty[loc.County]; !seen {
			counties = append(counties, loc.County)
		}
		byCounty[loc.County] = append(byCounty[loc.County], loc)
	}

	for _, county := range counties {
		locs := byCounty[county]
		fmt.Printf("=== %s (%d locations) ===\n", county, len(locs))
		for _, loc := range locs {
			for _, svc := range cat.Services() {
				fmt.Printf("  %s\n", pages.ResolvePath(svc.Slug, loc))
			}
		}
		fmt.Println()
	}
}
