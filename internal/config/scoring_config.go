package config

const (
	// Proximity
	EarthRadiusKm      = 6371.0
	ProximityNearKm    = 0.5
	ProximityMidKm     = 1.5
	ProximityFarKm     = 3.0
	ProximityNearScore = 10.0
	ProximityMidScore  = 7.0
	ProximityFarScore  = 4.0

	// Urgency
	UrgencyTierAScore   = 10.0
	UrgencyTierBScore   = 6.0
	UrgencyDefaultScore = 3.0

	// Citizen ranking weights (sum to 1.0)
	CitizenProximityWeight = 0.4
	CitizenUrgencyWeight   = 0.25
	CitizenUpvoteWeight    = 0.25
	CitizenAgeWeight       = 0.1

	// Admin ranking weights (sum to 1.0)
	AdminUrgencyWeight = 0.4
	AdminUpvoteWeight  = 0.4
	AdminAgeWeight     = 0.2

	// Similarity
	SimilarityThreshold = 0.7
	SimilarityRadiusM   = 500.0
)

// UrgencyTierA - категорії, що загрожують санітарії та інфраструктурі
// першої необхідності. Ключі в нижньому регістрі.
var UrgencyTierA = map[string]bool{
	"garbage":          true,
	"streetlights":     true,
	"public toilet":    true,
	"parks":            true,
	"sewage":           true,
	"drainage":         true,
	"pipeline leakage": true,
}

// UrgencyTierB - серйозні, але менш нагальні категорії.
var UrgencyTierB = map[string]bool{
	"fire safety":             true,
	"damaged traffic signals": true,
	"power cut":               true,
	"potholes":                true,
	"encroachment":            true,
	"damaged footpath":        true,
	"stray dogs":              true,
}
