package pages

import (
	"fmt"

	"github.com/MercerDigital/MD-Backend/internal/catalog"
)

// Result aggregates one synthesis run. Errors holds one formatted entry per
// failed pair; a failure never aborts the batch.
type Result struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// Synthesizer materializes one artifact for every (service, location) pair in
// the catalog, minus the skip list. Iteration is service-major in authored
// catalog order so successive runs produce diffable logs.
type Synthesizer struct {
	Catalog *catalog.Store
	Writer  ArtifactWriter

	// SkipList holds path suffixes ({service}/{state}/{county}/{location})
	// whose artifacts must not be regenerated. An operator override, not a
	// record of what the store actually contains.
	SkipList map[string]struct{}

	// SkipExisting also skips any pair whose artifact is already in the store,
	// so "already generated" is enforced by a lookup instead of by keeping
	// SkipList accurate by hand. A probe failure counts as a pair error.
	SkipExisting bool

	// Progress, when set, receives the canonical path of each created
	// artifact as it lands. Used by the generator CLI for per-page output.
	Progress func(path string)
}

// Run walks the full cross product and returns the aggregate outcome.
func (s *Synthesizer) Run() Result {
	var res Result

	for _, svc := range s.Catalog.Services() {
		for _, loc := range s.Catalog.Locations() {
			path := ResolvePath(svc.Slug, loc)

			if _, skip := s.SkipList[PathSuffix(svc.Slug, loc)]; skip {
				res.Skipped++
				continue
			}
			if s.SkipExisting {
				exists, err := s.Writer.Exists(path)
				if err != nil {
					res.Errors = append(res.Errors, fmt.Sprintf("%s/%s: existence check failed: %v", svc.Slug, loc.Slug, err))
					continue
				}
				if exists {
					res.Skipped++
					continue
				}
			}

			content := DeriveContent(svc, loc)
			artifact := buildArtifact(svc, loc, path, content)

			if err := s.Writer.Save(artifact); err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("%s/%s: %v", svc.Slug, loc.Slug, err))
				continue
			}
			res.Created++
			if s.Progress != nil {
				s.Progress(path)
			}
		}
	}

	return res
}

// buildArtifact assembles the stored row for one pair. Keywords are the
// service's lists followed by the location's, concatenated without
// deduplication — the rendering layer wants them in that order.
func buildArtifact(svc catalog.Service, loc catalog.Location, path string, content Content) *Artifact {
	a := &Artifact{
		Path:         path,
		ServiceSlug:  svc.Slug,
		LocationSlug: loc.Slug,
		Title:        fmt.Sprintf("%s in %s, %s | Mercer Digital", svc.Name, loc.Name, loc.State),
		MetaDesc:     fmt.Sprintf("%s — serving %s and the rest of %s.", svc.ShortDescription, loc.Name, loc.County),
		Keywords:     append(svc.Keywords.Flatten(), loc.Keywords.Flatten()...),
		Body:         content.Description,
	}

	for _, t := range content.Testimonials {
		a.Testimonials = append(a.Testimonials, TestimonialRow{
			Quote:    t.Quote,
			Author:   t.Author,
			Business: t.Business,
		})
	}
	for _, area := range content.NearbyAreas {
		a.NearbyAreas = append(a.NearbyAreas, NearbyAreaRow{
			Name:     area.Name,
			ZipCode:  area.ZipCode,
			Features: area.Features,
		})
	}

	return a
}
