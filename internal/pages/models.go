package pages

import (
	"time"

	"github.com/lib/pq"
)

// Artifact is one generated service page, stored at its canonical path. A
// generator rerun upserts on Path, so rows are overwritten in place.
type Artifact struct {
	ID           string           `gorm:"primaryKey" json:"id"`
	Path         string           `gorm:"uniqueIndex" json:"path"`
	ServiceSlug  string           `json:"service_slug"`
	LocationSlug string           `json:"location_slug"`
	Title        string           `json:"title"`
	MetaDesc     string           `json:"meta_description"`
	Keywords     pq.StringArray   `gorm:"type:text[]" json:"keywords"`
	Body         string           `json:"body"`
	Testimonials []TestimonialRow `gorm:"foreignKey:ArtifactID;constraint:OnDelete:CASCADE" json:"testimonials"`
	NearbyAreas  []NearbyAreaRow  `gorm:"foreignKey:ArtifactID;constraint:OnDelete:CASCADE" json:"nearby_areas"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type TestimonialRow struct {
	ID         string `gorm:"primaryKey" json:"id"`
	ArtifactID string `gorm:"index" json:"-"`
	Position   int    `json:"position"`
	Quote      string `json:"quote"`
	Author     string `json:"author"`
	Business   string `json:"business"`
}

type NearbyAreaRow struct {
	ID         string         `gorm:"primaryKey" json:"id"`
	ArtifactID string         `gorm:"index" json:"-"`
	Position   int            `json:"position"`
	Name       string         `json:"name"`
	ZipCode    string         `json:"zip_code"`
	Features   pq.StringArray `gorm:"type:text[]" json:"features"`
}

func (Artifact) TableName() string {
	return "pages.artifacts"
}

func (TestimonialRow) TableName() string {
	return "pages.testimonials"
}

func (NearbyAreaRow) TableName() string {
	return "pages.nearby_areas"
}
