package pages

import (
	"strings"

	"github.com/MercerDigital/MD-Backend/internal/catalog"
)

// Namespace is the URL prefix every generated service page lives under.
const Namespace = "services"

// SlugifySegment lowercases s and collapses every whitespace run into a single
// hyphen, e.g. "Mercer County" -> "mercer-county". Pure and total.
func SlugifySegment(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// PathSuffix derives the canonical path for a (service, location) pair without
// the namespace prefix: {serviceSlug}/{stateSlug}/{countySlug}/{locationSlug}.
// This is the shape skip-list entries are written in.
func PathSuffix(serviceSlug string, loc catalog.Location) string {
	return serviceSlug + "/" + SlugifySegment(loc.State) + "/" + SlugifySegment(loc.County) + "/" + loc.Slug
}

// ResolvePath derives the full canonical path for a (service, location) pair:
// services/{serviceSlug}/{stateSlug}/{countySlug}/{locationSlug}. Both the
// generator and the path-correction middleware go through this one function so
// the two can never disagree about where a page lives. Requires a Location with
// non-empty State and County, which catalog validation guarantees.
func ResolvePath(serviceSlug string, loc catalog.Location) string {
	return Namespace + "/" + PathSuffix(serviceSlug, loc)
}
