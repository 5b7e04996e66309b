package domain

import "time"

type Horoscope struct {
	ID           int        `json:"id" db:"id"`
	UserID       int        `json:"user_id" db:"user_id"`
	DateOfBirth  *time.Time `json:"date_of_birth" db:"date_of_birth"`
	TimeOfBirth  *string    `json:"time_of_birth" db:"time_of_birth"`
	PlaceOfBirth *string    `json:"place_of_birth" db:"place_of_birth"`
	Manglik      bool       `json:"manglik" db:"manglik"`
	Sun          *string    `json:"sun" db:"sun"`
	Moon         *string    `json:"moon" db:"moon"`
	Venus        *string    `json:"venus" db:"venus"`
	Mars         *string    `json:"mars" db:"mars"`
	Mercury      *string    `json:"mercury" db:"mercury"`
	Jupiter      *string    `json:"jupiter" db:"jupiter"`
	Saturn       *string    `json:"saturn" db:"saturn"`
	Rahu         *string    `json:"rahu" db:"rahu"`
	Ketu         *string    `json:"ketu" db:"ketu"`
	Nakshatra    *string    `json:"nakshatra" db:"nakshatra"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

var ZodiacSigns = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var Nakshatras = []string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Abhijit", "Shravana", "Dhanishta",
	"Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

func IsZodiacSign(s string) bool {
	return contains(ZodiacSigns, s)
}

func IsNakshatra(s string) bool {
	return contains(Nakshatras, s)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
