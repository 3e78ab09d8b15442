package pages

import (
	"fmt"

	"github.com/MercerDigital/MD-Backend/internal/catalog"
	"golang.org/x/text/cases"
)

// Testimonial is one pre-authored quote interpolated for a (service, location)
// pair. The rendering layer shows these verbatim.
type Testimonial struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Business string `json:"business"`
}

// Area is one nearby-area entry shown on a service page.
type Area struct {
	Name     string   `json:"name"`
	ZipCode  string   `json:"zip_code"`
	Features []string `json:"features"`
}

// Content is everything DeriveContent produces for one page body.
type Content struct {
	Description  string        `json:"description"`
	Testimonials []Testimonial `json:"testimonials"`
	NearbyAreas  []Area        `json:"nearby_areas"`
}

// sentinelZip pads synthesized nearby-area entries when a location has fewer
// than three zip codes on record.
const sentinelZip = "00000"

type bucket int

const (
	bucketCommercial bucket = iota // default arm
	bucketTech
	bucketResidential
)

// bucketFor classifies a location's messaging tag. The tag is an open-ended
// string in catalog data, so anything unrecognized lands in the commercial
// bucket rather than producing an empty testimonial set.
func bucketFor(messaging string) bucket {
	switch cases.Fold().String(messaging) {
	case "tech-focused":
		return bucketTech
	case "suburban":
		return bucketResidential
	default:
		return bucketCommercial
	}
}

type testimonialTemplate struct {
	quote  string // fmt template: service name, location name
	author string
}

var testimonialTemplates = map[bucket][2]testimonialTemplate{
	bucketTech: {
		{
			quote:  "Their %s team actually understood our stack. We went from a dated site to something our engineers are proud to link to, and leads from %s have doubled.",
			author: "Priya N.",
		},
		{
			quote:  "We compared agencies for months. Their %s work was the only proposal that talked about performance budgets before pricing. Best vendor decision we made in %s.",
			author: "Daniel K.",
		},
	},
	bucketResidential: {
		{
			quote:  "As a family business we needed %s without the agency runaround. They explained everything in plain English and our phone hasn't stopped ringing since. Highly recommend them to anyone in %s.",
			author: "Maria T.",
		},
		{
			quote:  "Friendly, local, and fast. The %s project came in on budget and they still check in months later. You can tell they actually care about %s businesses.",
			author: "Jim R.",
		},
	},
	bucketCommercial: {
		{
			quote:  "We run a busy storefront and had no time to manage a web project. Their %s process was turnkey and the new site pays for itself. A great partner for %s companies.",
			author: "Angela W.",
		},
		{
			quote:  "Professional from kickoff to launch. The %s engagement delivered exactly what was scoped, on schedule. They know the %s market.",
			author: "Robert F.",
		},
	},
}

// descriptionOverrides holds hand-written page copy for locations where the
// generic template reads flat. Keyed by location slug; fmt template takes the
// service name.
var descriptionOverrides = map[string]string{
	"princeton": "Princeton businesses compete for a discerning, well-connected audience. Our %s work for university-town clients pairs clean design with substance, because your customers here read past the headline.",
	"trenton":   "From the State House corridor to South Broad, Trenton companies need an online presence that works as hard as they do. Our %s services are built for capital-city businesses that serve both government and neighborhood customers.",
}

// nearbyAreaOverrides holds hand-curated nearby-area sets, keyed by location
// slug. Exactly three entries each.
var nearbyAreaOverrides = map[string][3]Area{
	"princeton": {
		{Name: "Princeton Junction", ZipCode: "08550", Features: []string{"NJ Transit hub", "commuter professionals"}},
		{Name: "Kingston", ZipCode: "08528", Features: []string{"historic village", "small retail"}},
		{Name: "Rocky Hill", ZipCode: "08553", Features: []string{"borough businesses", "Route 518 corridor"}},
	},
	"trenton": {
		{Name: "Chambersburg", ZipCode: "08611", Features: []string{"restaurant district", "family businesses"}},
		{Name: "Mill Hill", ZipCode: "08608", Features: []string{"historic district", "professional offices"}},
		{Name: "Villa Park", ZipCode: "08610", Features: []string{"residential", "neighborhood retail"}},
	},
}

// DeriveContent builds the page body for one (service, location) pair. Pure and
// deterministic: the generator relies on reruns producing identical content for
// the same pair. Always returns exactly 2 testimonials and 3 nearby areas.
func DeriveContent(svc catalog.Service, loc catalog.Location) Content {
	return Content{
		Description:  deriveDescription(svc, loc),
		Testimonials: deriveTestimonials(svc, loc),
		NearbyAreas:  deriveNearbyAreas(loc),
	}
}

func deriveDescription(svc catalog.Service, loc catalog.Location) string {
	if tmpl, ok := descriptionOverrides[loc.Slug]; ok {
		return fmt.Sprintf(tmpl, svc.Name)
	}
	return fmt.Sprintf("Looking for %s in %s? We deliver %s for %s businesses of every size, backed by a local team that knows the %s market.",
		svc.Name, loc.Name, svc.Description, loc.Name, loc.County)
}

func deriveTestimonials(svc catalog.Service, loc catalog.Location) []Testimonial {
	templates := testimonialTemplates[bucketFor(loc.Messaging)]
	out := make([]Testimonial, 0, len(templates))
	for _, t := range templates {
		out = append(out, Testimonial{
			Quote:    fmt.Sprintf(t.quote, svc.Name, loc.Name),
			Author:   t.author,
			Business: fmt.Sprintf("%s %s client", loc.Name, svc.Name),
		})
	}
	return out
}

func deriveNearbyAreas(loc catalog.Location) []Area {
	if areas, ok := nearbyAreaOverrides[loc.Slug]; ok {
		return areas[:]
	}

	// Synthesize three entries from the location's own zips, padding with the
	// sentinel when fewer than three are on record.
	zips := [3]string{sentinelZip, sentinelZip, sentinelZip}
	for i := 0; i < 3 && i < len(loc.ZipCodes); i++ {
		zips[i] = loc.ZipCodes[i]
	}

	return []Area{
		{Name: "Downtown " + loc.Name, ZipCode: zips[0], Features: []string{"local businesses", "main street retail"}},
		{Name: loc.Name + " North", ZipCode: zips[1], Features: []string{"residential neighborhoods", "community services"}},
		{Name: loc.Name + " South", ZipCode: zips[2], Features: []string{"commercial corridor", "growing businesses"}},
	}
}
