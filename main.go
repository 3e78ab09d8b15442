package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/MercerDigital/MD-Backend/internal/catalog"
	"github.com/MercerDigital/MD-Backend/internal/db"
	"github.com/MercerDigital/MD-Backend/internal/middleware"
	"github.com/MercerDigital/MD-Backend/internal/pages"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	catalogDir := os.Getenv("CATALOG_DIR")
	if catalogDir == "" {
		catalogDir = "internal/catalog/data"
	}

	cat, err := catalog.Load(catalogDir)
	if err != nil {
		log.Fatal("Failed to load catalog: ", err)
	}
	log.Printf("Loaded catalog: %d services, %d locations", len(cat.Services()), len(cat.Locations()))

	pages.Init()

	handler := &pages.Handler{
		Catalog: cat,
		Store:   &pages.ArtifactStore{DB: db.DB},
	}

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)

	r.Mount("/services", pages.SetupRoutes(handler))

	fmt.Println("Server listening on port :" + port + "...")

	http.ListenAndServe("0.0.0.0:"+port, r)
}
