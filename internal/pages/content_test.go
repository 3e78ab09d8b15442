package pages_test

import (
	"strings"
	"testing"

	"github.com/MercerDigital/MD-Backend/internal/catalog"
	"github.com/MercerDigital/MD-Backend/internal/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(slug, name string) catalog.Service {
	return catalog.Service{
		Slug:        slug,
		Name:        name,
		Description: "test offerings",
	}
}

func TestDeriveContentCompleteness(t *testing.T) {
	svc := testService("web-design", "Web Design")

	// Completeness must hold regardless of messaging tag or zip count.
	locations := []catalog.Location{
		{Slug: "a", Name: "Alpha", State: "New Jersey", County: "Mercer County", Messaging: "tech-focused", ZipCodes: []string{"08540", "08542", "08544"}},
		{Slug: "b", Name: "Beta", State: "New Jersey", County: "Mercer County", Messaging: "suburban", ZipCodes: []string{"08619"}},
		{Slug: "c", Name: "Gamma", State: "New Jersey", County: "Mercer County", Messaging: "historic-focused"},
		{Slug: "d", Name: "Delta", State: "New Jersey", County: "Mercer County", Messaging: "never-seen-before-tag"},
	}

	for _, loc := range locations {
		content := pages.DeriveContent(svc, loc)
		require.Len(t, content.Testimonials, 2, "location %s", loc.Slug)
		require.Len(t, content.NearbyAreas, 3, "location %s", loc.Slug)
		require.NotEmpty(t, content.Description, "location %s", loc.Slug)
	}
}

func TestDeriveContentDeterministic(t *testing.T) {
	svc := testService("seo-services", "SEO Services")
	loc := catalog.Location{Slug: "x", Name: "Xtown", State: "New Jersey", County: "Mercer County", Messaging: "suburban", ZipCodes: []string{"08648"}}

	first := pages.DeriveContent(svc, loc)
	second := pages.DeriveContent(svc, loc)
	require.Equal(t, first, second)
}

func TestDeriveContentInterpolatesNames(t *testing.T) {
	svc := testService("web-design", "Web Design")
	loc := catalog.Location{Slug: "x", Name: "Xtown", State: "New Jersey", County: "Mercer County", Messaging: "tech-focused"}

	content := pages.DeriveContent(svc, loc)
	for _, tm := range content.Testimonials {
		assert.Contains(t, tm.Quote, "Web Design")
		assert.Contains(t, tm.Quote, "Xtown")
		assert.NotEmpty(t, tm.Author)
		assert.Contains(t, tm.Business, "Xtown")
	}
}

func TestDeriveContentMessagingCaseInsensitive(t *testing.T) {
	svc := testService("web-design", "Web Design")
	lower := catalog.Location{Slug: "x", Name: "Xtown", State: "New Jersey", County: "Mercer County", Messaging: "tech-focused"}
	upper := lower
	upper.Messaging = "Tech-Focused"

	require.Equal(t,
		pages.DeriveContent(svc, lower).Testimonials,
		pages.DeriveContent(svc, upper).Testimonials)
}

func TestNearbyAreasSentinelZips(t *testing.T) {
	svc := testService("web-design", "Web Design")
	loc := catalog.Location{Slug: "tiny", Name: "Tinyville", State: "New Jersey", County: "Mercer County", ZipCodes: []string{"08525"}}

	content := pages.DeriveContent(svc, loc)
	require.Len(t, content.NearbyAreas, 3)
	assert.Equal(t, "08525", content.NearbyAreas[0].ZipCode)
	assert.Equal(t, "00000", content.NearbyAreas[1].ZipCode)
	assert.Equal(t, "00000", content.NearbyAreas[2].ZipCode)
	for _, area := range content.NearbyAreas {
		assert.Contains(t, area.Name, "Tinyville")
	}
}

func TestNearbyAreasOverrideWins(t *testing.T) {
	svc := testService("web-design", "Web Design")
	loc := catalog.Location{Slug: "princeton", Name: "Princeton", State: "New Jersey", County: "Mercer County", ZipCodes: []string{"08540"}}

	content := pages.DeriveContent(svc, loc)
	require.Len(t, content.NearbyAreas, 3)
	// curated entries, not the synthesized Downtown/North/South set
	for _, area := range content.NearbyAreas {
		assert.False(t, strings.HasPrefix(area.Name, "Downtown "), "expected curated area, got %q", area.Name)
	}
}

func TestDescriptionFallbackTemplate(t *testing.T) {
	svc := testService("web-design", "Web Design")
	loc := catalog.Location{Slug: "no-override", Name: "Nowhere", State: "New Jersey", County: "Mercer County"}

	desc := pages.DeriveContent(svc, loc).Description
	assert.Contains(t, desc, "Web Design")
	assert.Contains(t, desc, "Nowhere")
	assert.Contains(t, desc, "Mercer County")
}
