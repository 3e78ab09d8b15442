package pages

import (
	"net/http"
	"strings"

	"github.com/MercerDigital/MD-Backend/internal/catalog"
)

// LocationFinder is the slice of the catalog the path-correction layer needs.
type LocationFinder interface {
	LocationBySlug(slug string) (catalog.Location, bool)
}

// CanonicalRedirect inspects a request path under the services namespace and,
// for the two recognized under-specified shapes, derives the canonical
// 4-segment page path via ResolvePath. Returns ok=false for every path it does
// not correct.
//
// Shape A: services/{service}/{location} — hierarchy segments missing entirely.
// Shape B: services/{service}/{state}/{location} — county segment missing; the
// state segment must match the location's derived state slug, otherwise the
// path is assumed to be a different, legitimately-shaped route.
//
// Canonical paths have four segments after the namespace and are never matched
// by either shape, so a corrected request can never redirect again.
func CanonicalRedirect(requestPath string, finder LocationFinder) (string, bool) {
	trimmed := strings.Trim(requestPath, "/")
	segments := strings.Split(trimmed, "/")
	if len(segments) < 3 || segments[0] != Namespace {
		return "", false
	}

	switch len(segments) {
	case 3: // Shape A
		loc, ok := finder.LocationBySlug(segments[2])
		if !ok {
			return "", false
		}
		return "/" + ResolvePath(segments[1], loc), true

	case 4: // Shape B
		loc, ok := finder.LocationBySlug(segments[3])
		if !ok {
			return "", false
		}
		if SlugifySegment(loc.State) != segments[2] {
			return "", false
		}
		return "/" + ResolvePath(segments[1], loc), true
	}

	return "", false
}

// PathCorrection redirects under-specified service-page requests to their
// canonical path. Stateless: each request depends only on its own path and the
// immutable catalog, so it is safe under any request concurrency.
func PathCorrection(finder LocationFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if target, ok := CanonicalRedirect(r.URL.Path, finder); ok && target != r.URL.Path {
				http.Redirect(w, r, target, http.StatusMovedPermanently)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
