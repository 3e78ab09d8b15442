package pages_test

import (
	"errors"
	"testing"

	"github.com/MercerDigital/MD-Backend/internal/catalog"
	"github.com/MercerDigital/MD-Backend/internal/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memWriter implements pages.ArtifactWriter in memory, with optional per-path
// failure injection.
type memWriter struct {
	saved    map[string]*pages.Artifact
	attempts []string
	failOn   map[string]error
}

func newMemWriter() *memWriter {
	return &memWriter{
		saved:  make(map[string]*pages.Artifact),
		failOn: make(map[string]error),
	}
}

func (m *memWriter) Exists(path string) (bool, error) {
	_, ok := m.saved[path]
	return ok, nil
}

func (m *memWriter) Save(a *pages.Artifact) error {
	m.attempts = append(m.attempts, a.Path)
	if err, ok := m.failOn[a.Path]; ok {
		return err
	}
	m.saved[a.Path] = a
	return nil
}

func testCatalog(t *testing.T) *catalog.Store {
	t.Helper()

	locations := []catalog.Location{
		{Slug: "princeton", Name: "Princeton", State: "New Jersey", County: "Mercer County", Messaging: "tech-focused", ZipCodes: []string{"08540", "08542", "08544"},
			Keywords: catalog.KeywordSet{Primary: []string{"princeton web design"}}},
		{Slug: "trenton", Name: "Trenton", State: "New Jersey", County: "Mercer County", Messaging: "commercial-focused", ZipCodes: []string{"08608"},
			Keywords: catalog.KeywordSet{Primary: []string{"trenton web design"}}},
		{Slug: "hamilton", Name: "Hamilton", State: "New Jersey", County: "Mercer County", Messaging: "suburban", ZipCodes: []string{"08619"}},
	}
	services := []catalog.Service{
		{Slug: "web-design", Name: "Web Design", Description: "custom websites",
			Keywords: catalog.KeywordSet{Primary: []string{"web design"}, Secondary: []string{"websites"}}},
		{Slug: "seo-services", Name: "SEO Services", Description: "search optimization"},
	}

	store, err := catalog.NewStore(locations, services)
	require.NoError(t, err)
	return store
}

func TestRunCreatesFullCrossProduct(t *testing.T) {
	cat := testCatalog(t)
	w := newMemWriter()

	res := (&pages.Synthesizer{Catalog: cat, Writer: w}).Run()

	require.Empty(t, res.Errors)
	require.Equal(t, 6, res.Created) // 2 services × 3 locations
	require.Equal(t, 0, res.Skipped)
	require.Len(t, w.saved, 6)
	require.Contains(t, w.saved, "services/web-design/new-jersey/mercer-county/princeton")
	require.Contains(t, w.saved, "services/seo-services/new-jersey/mercer-county/hamilton")
}

func TestRunSkipListExclusivity(t *testing.T) {
	cat := testCatalog(t)
	w := newMemWriter()

	skip := map[string]struct{}{
		"web-design/new-jersey/mercer-county/princeton": {},
		"seo-services/new-jersey/mercer-county/trenton": {},
	}

	res := (&pages.Synthesizer{Catalog: cat, Writer: w, SkipList: skip}).Run()

	require.Equal(t, 4, res.Created)
	require.Equal(t, 2, res.Skipped)
	require.Empty(t, res.Errors)

	// skip-listed paths are never attempted, everything else exactly once
	assert.NotContains(t, w.attempts, "services/web-design/new-jersey/mercer-county/princeton")
	assert.NotContains(t, w.attempts, "services/seo-services/new-jersey/mercer-county/trenton")
	assert.Len(t, w.attempts, 4)
}

func TestRunIdempotentTargeting(t *testing.T) {
	cat := testCatalog(t)
	skip := map[string]struct{}{
		"web-design/new-jersey/mercer-county/hamilton": {},
	}

	w1 := newMemWriter()
	(&pages.Synthesizer{Catalog: cat, Writer: w1, SkipList: skip}).Run()

	w2 := newMemWriter()
	(&pages.Synthesizer{Catalog: cat, Writer: w2, SkipList: skip}).Run()

	require.Equal(t, w1.attempts, w2.attempts)
}

func TestRunPartialFailure(t *testing.T) {
	cat := testCatalog(t)
	w := newMemWriter()
	w.failOn["services/web-design/new-jersey/mercer-county/trenton"] = errors.New("tablespace full")

	res := (&pages.Synthesizer{Catalog: cat, Writer: w}).Run()

	require.Equal(t, 5, res.Created)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "web-design/trenton")
	assert.Contains(t, res.Errors[0], "tablespace full")

	// the failure did not stop later pairs
	require.Contains(t, w.saved, "services/seo-services/new-jersey/mercer-county/hamilton")
}

func TestRunSkipExisting(t *testing.T) {
	cat := testCatalog(t)
	w := newMemWriter()

	first := (&pages.Synthesizer{Catalog: cat, Writer: w, SkipExisting: true}).Run()
	require.Equal(t, 6, first.Created)

	// second run finds every artifact in the store and touches nothing
	second := (&pages.Synthesizer{Catalog: cat, Writer: w, SkipExisting: true}).Run()
	require.Equal(t, 0, second.Created)
	require.Equal(t, 6, second.Skipped)
	require.Len(t, w.attempts, 6)
}

func TestRunRerunOverwritesWithoutSkipExisting(t *testing.T) {
	cat := testCatalog(t)
	w := newMemWriter()

	(&pages.Synthesizer{Catalog: cat, Writer: w}).Run()
	res := (&pages.Synthesizer{Catalog: cat, Writer: w}).Run()

	// reruns always rewrite the non-skipped set
	require.Equal(t, 6, res.Created)
	require.Len(t, w.attempts, 12)
}

func TestArtifactMetadataAssembly(t *testing.T) {
	cat := testCatalog(t)
	w := newMemWriter()

	(&pages.Synthesizer{Catalog: cat, Writer: w}).Run()

	a := w.saved["services/web-design/new-jersey/mercer-county/princeton"]
	require.NotNil(t, a)

	assert.Equal(t, "web-design", a.ServiceSlug)
	assert.Equal(t, "princeton", a.LocationSlug)
	assert.Contains(t, a.Title, "Web Design")
	assert.Contains(t, a.Title, "Princeton")

	// service keywords first, then location keywords, duplicates untouched
	require.Equal(t, []string{"web design", "websites", "princeton web design"}, []string(a.Keywords))

	require.Len(t, a.Testimonials, 2)
	require.Len(t, a.NearbyAreas, 3)
}
