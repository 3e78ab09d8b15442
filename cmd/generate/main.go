package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MercerDigital/MD-Backend/internal/catalog"
	"github.com/MercerDigital/MD-Backend/internal/db"
	"github.com/MercerDigital/MD-Backend/internal/pages"
	"github.com/joho/godotenv"
)

// skipSuffixes lists pairs excluded from regeneration, as
// {service}/{state}/{county}/{location} path suffixes. These pages carry
// hand-tuned copy that a rerun must not flatten back to templates. The store
// existence check already skips everything previously generated; this list is
// only for explicit overrides.
var skipSuffixes = []string{
	"web-design/new-jersey/mercer-county/princeton",
	"seo-services/new-jersey/mercer-county/trenton",
}

func main() {
	godotenv.Load(".env.local")
	db.Connect()

	catalogDir := os.Getenv("CATALOG_DIR")
	if catalogDir == "" {
		catalogDir = "internal/catalog/data"
	}

	cat, err := catalog.Load(catalogDir)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	pages.Init()

	skip := make(map[string]struct{}, len(skipSuffixes))
	for _, s := range skipSuffixes {
		skip[s] = struct{}{}
	}

	synth := &pages.Synthesizer{
		Catalog:      cat,
		Writer:       &pages.ArtifactStore{DB: db.DB},
		SkipList:     skip,
		SkipExisting: true,
		Progress: func(path string) {
			fmt.Printf("✓ created %s\n", path)
		},
	}

	res := synth.Run()

	fmt.Printf("\nDone: %d created, %d skipped, %d errors\n", res.Created, res.Skipped, len(res.Errors))
	if len(res.Errors) > 0 {
		fmt.Println("\nErrors:")
		for _, e := range res.Errors {
			fmt.Printf("  ⚠️  %s\n", e)
		}
	}
}
