package matching

import "github.com/gdugdh24/matrimony-backend/internal/domain"

// Only four rules of the 36-guna system are modelled; the remaining points
// stay in the denominator.
const horoscopeTotalPoints = 36

const (
	sunSignPoints   = 8
	nakshatraPoints = 10
	manglikPoints   = 8
	moonSignPoints  = 5
	venusSignPoints = 5
)

type pair struct{ a, b string }

var compatibleSunSigns = symmetric([]pair{
	{"Aries", "Leo"}, {"Aries", "Sagittarius"},
	{"Taurus", "Virgo"}, {"Taurus", "Capricorn"},
	{"Gemini", "Libra"}, {"Gemini", "Aquarius"},
	{"Cancer", "Scorpio"}, {"Cancer", "Pisces"},
	{"Leo", "Sagittarius"},
	{"Virgo", "Capricorn"},
	{"Libra", "Aquarius"},
	{"Scorpio", "Pisces"},
})

var compatibleNakshatras = symmetric([]pair{
	{"Ashwini", "Bharani"},
	{"Krittika", "Rohini"},
	{"Mrigashira", "Ardra"},
	{"Punarvasu", "Pushya"},
	{"Ashlesha", "Magha"},
	{"Purva Phalguni", "Uttara Phalguni"},
	{"Hasta", "Chitra"},
	{"Swati", "Vishakha"},
	{"Anuradha", "Jyeshtha"},
	{"Mula", "Purva Ashadha"},
	{"Uttara Ashadha", "Shravana"},
	{"Dhanishta", "Shatabhisha"},
	{"Purva Bhadrapada", "Uttara Bhadrapada"},
	{"Revati", "Ashwini"},
})

func symmetric(pairs []pair) map[pair]struct{} {
	m := make(map[pair]struct{}, len(pairs)*2)
	for _, p := range pairs {
		m[p] = struct{}{}
		m[pair{p.b, p.a}] = struct{}{}
	}
	return m
}

// SunSignsCompatible reports whether two sun signs form one of the
// element pairings. The lookup is symmetric.
func SunSignsCompatible(a, b string) bool {
	_, ok := compatibleSunSigns[pair{a, b}]
	return ok
}

// NakshatrasCompatible reports whether two nakshatras are a curated pair or
// the same nakshatra.
func NakshatrasCompatible(a, b string) bool {
	if a == b {
		return true
	}
	_, ok := compatibleNakshatras[pair{a, b}]
	return ok
}

// HoroscopeResult holds the points each rule awarded.
type HoroscopeResult struct {
	SunSign   int `json:"sun_sign"`
	Nakshatra int `json:"nakshatra"`
	Manglik   int `json:"manglik"`
	MoonSign  int `json:"moon_sign"`
	VenusSign int `json:"venus_sign"`
	Points    int `json:"points"`
	Score     int `json:"score"`
}

// EvaluateHoroscopes applies every rule and returns the per-rule points.
// A nil horoscope on either side yields the zero result.
func EvaluateHoroscopes(a, b *domain.Horoscope) HoroscopeResult {
	var r HoroscopeResult
	if a == nil || b == nil {
		return r
	}

	if bothSet(a.Sun, b.Sun) && SunSignsCompatible(*a.Sun, *b.Sun) {
		r.SunSign = sunSignPoints
	}
	if bothSet(a.Nakshatra, b.Nakshatra) && NakshatrasCompatible(*a.Nakshatra, *b.Nakshatra) {
		r.Nakshatra = nakshatraPoints
	}
	if a.Manglik == b.Manglik {
		r.Manglik = manglikPoints
	}
	if bothSet(a.Moon, b.Moon) && *a.Moon == *b.Moon {
		r.MoonSign = moonSignPoints
	}
	if bothSet(a.Venus, b.Venus) && *a.Venus == *b.Venus {
		r.VenusSign = venusSignPoints
	}

	r.Points = r.SunSign + r.Nakshatra + r.Manglik + r.MoonSign + r.VenusSign
	r.Score = percent(r.Points, horoscopeTotalPoints)
	return r
}

// Compatibility returns the horoscope compatibility score in [0,100].
func Compatibility(a, b *domain.Horoscope) int {
	return EvaluateHoroscopes(a, b).Score
}

// CompatibilityLevel labels a score. Each band includes its lower bound.
func CompatibilityLevel(score int) string {
	switch {
	case score >= 80:
		return "Excellent Match"
	case score >= 60:
		return "Good Match"
	case score >= 40:
		return "Average Match"
	case score >= 20:
		return "Below Average Match"
	default:
		return "Poor Match"
	}
}

func bothSet(a, b *string) bool {
	return a != nil && *a != "" && b != nil && *b != ""
}

// percent is round-half-up of points/total*100 in integer arithmetic.
func percent(points, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*points + total) / (2 * total)
}
