package pages

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArtifactWriter is the slice of the store the synthesizer needs. Tests swap in
// an in-memory implementation so the engine runs without Postgres.
type ArtifactWriter interface {
	Exists(path string) (bool, error)
	Save(a *Artifact) error
}

// ArtifactStore persists generated pages in the pages schema.
type ArtifactStore struct {
	DB *gorm.DB
}

// Save upserts an artifact on its canonical path. Child testimonial and
// nearby-area rows are replaced wholesale: a rerun overwrites whatever is at
// the path, including hand edits made outside the skip list.
func (s *ArtifactStore) Save(a *Artifact) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	for i := range a.Testimonials {
		a.Testimonials[i].ID = uuid.NewString()
		a.Testimonials[i].Position = i
	}
	for i := range a.NearbyAreas {
		a.NearbyAreas[i].ID = uuid.NewString()
		a.NearbyAreas[i].Position = i
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var existing Artifact
		err := tx.First(&existing, "path = ?", a.Path).Error
		if err == nil {
			// Keep the row ID stable across reruns; children are rebuilt.
			a.ID = existing.ID
			a.CreatedAt = existing.CreatedAt
			if err := tx.Where("artifact_id = ?", existing.ID).Delete(&TestimonialRow{}).Error; err != nil {
				return fmt.Errorf("clear testimonials for %s: %w", a.Path, err)
			}
			if err := tx.Where("artifact_id = ?", existing.ID).Delete(&NearbyAreaRow{}).Error; err != nil {
				return fmt.Errorf("clear nearby areas for %s: %w", a.Path, err)
			}
			if err := tx.Delete(&Artifact{}, "id = ?", existing.ID).Error; err != nil {
				return fmt.Errorf("clear artifact %s: %w", a.Path, err)
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("lookup artifact %s: %w", a.Path, err)
		}

		for i := range a.Testimonials {
			a.Testimonials[i].ArtifactID = a.ID
		}
		for i := range a.NearbyAreas {
			a.NearbyAreas[i].ArtifactID = a.ID
		}

		if err := tx.Create(a).Error; err != nil {
			return fmt.Errorf("insert artifact %s: %w", a.Path, err)
		}
		return nil
	})
}

// Exists reports whether an artifact is already stored at path.
func (s *ArtifactStore) Exists(path string) (bool, error) {
	var count int64
	if err := s.DB.Model(&Artifact{}).Where("path = ?", path).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByPath loads one artifact with its testimonial and nearby-area rows in
// display order.
func (s *ArtifactStore) FindByPath(path string) (*Artifact, error) {
	var a Artifact
	err := s.DB.
		Preload("Testimonials", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("NearbyAreas", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&a, "path = ?", path).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}
