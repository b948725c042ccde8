// Package scoring computes the ranking scores for complaints.
// It contains only pure functions: a complaint plus an optional viewer
// location go in, two scalar scores come out. Safe to call from any
// number of request handlers without synchronization.
package scoring

import (
	"math"
	"strings"
	"time"

	"civictrack/backend/internal/config"
	"civictrack/backend/internal/models"
)

// Score builds the scored listing view for a single complaint.
// viewerLat/viewerLon equal to 0 mean "no viewer location" and disable
// the proximity component (admin listings pass 0, 0).
func Score(c models.Complaint, viewerLat, viewerLon float64, now time.Time) models.ScoredComplaint {
	proximity := 0.0
	if viewerLat != 0 && viewerLon != 0 && c.Latitude != nil && c.Longitude != nil {
		proximity = ProximityScore(*c.Latitude, *c.Longitude, viewerLat, viewerLon)
	}
	urgency := UrgencyScore(c.Category)
	age := AgeScore(c.CreatedAt, now)
	upvote := UpvoteScore(c.Upvotes)

	return models.ScoredComplaint{
		Complaint: c,
		CitizenScore: proximity*config.CitizenProximityWeight +
			urgency*config.CitizenUrgencyWeight +
			upvote*config.CitizenUpvoteWeight +
			age*config.CitizenAgeWeight,
		AdminScore: urgency*config.AdminUrgencyWeight +
			upvote*config.AdminUpvoteWeight +
			age*config.AdminAgeWeight,
	}
}

// ProximityScore maps the great-circle distance between the complaint
// and the viewer onto the 0-10 scale.
func ProximityScore(lat1, lon1, lat2, lon2 float64) float64 {
	distance := haversineKm(lat1, lon1, lat2, lon2)

	switch {
	case distance <= config.ProximityNearKm:
		return config.ProximityNearScore
	case distance <= config.ProximityMidKm:
		return config.ProximityMidScore
	case distance <= config.ProximityFarKm:
		return config.ProximityFarScore
	default:
		return 0
	}
}

// haversineKm - велике коло на сфері радіусом 6371 км.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)
	rLat1 := toRadians(lat1)
	rLat2 := toRadians(lat2)

	a := math.Pow(math.Sin(dLat/2), 2) + math.Pow(math.Sin(dLon/2), 2)*math.Cos(rLat1)*math.Cos(rLat2)
	c := 2 * math.Asin(math.Sqrt(a))
	return config.EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// UrgencyScore maps the category onto the fixed urgency tiers.
// Matching is case-insensitive; an unrecognized non-empty category
// still carries a small baseline urgency.
func UrgencyScore(category string) float64 {
	if category == "" {
		return 0
	}
	key := strings.ToLower(category)
	if config.UrgencyTierA[key] {
		return config.UrgencyTierAScore
	}
	if config.UrgencyTierB[key] {
		return config.UrgencyTierBScore
	}
	return config.UrgencyDefaultScore
}

// AgeScore is a staircase over whole hours elapsed since creation:
// a complaint gains one point roughly every six hours it stays open,
// capping at 10 past 60 hours.
func AgeScore(createdAt, now time.Time) float64 {
	if createdAt.IsZero() {
		return 0
	}
	hours := int64(now.Sub(createdAt).Hours())

	switch {
	case hours < 6:
		return 0
	case hours <= 12:
		return 1
	case hours <= 18:
		return 2
	case hours <= 24:
		return 3
	case hours <= 30:
		return 4
	case hours <= 36:
		return 5
	case hours <= 42:
		return 6
	case hours <= 48:
		return 7
	case hours <= 54:
		return 8
	case hours <= 60:
		return 9
	default:
		return 10
	}
}

// UpvoteScore is a staircase over the upvote count.
func UpvoteScore(upvotes int) float64 {
	switch {
	case upvotes <= 4:
		return 1
	case upvotes <= 14:
		return 4
	case upvotes <= 49:
		return 7
	default:
		return 10
	}
}
