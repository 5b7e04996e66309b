package domain

// CompleteProfile is assembled per request from the individual stores and
// is never persisted. Every field other than UserID may be nil.
type CompleteProfile struct {
	UserID      int         `json:"user_id"`
	Profile     *Profile    `json:"profile"`
	Education   *Education  `json:"education"`
	Career      *Career     `json:"career"`
	Family      *Family     `json:"family"`
	Preferences *Preference `json:"preferences"`
	Horoscope   *Horoscope  `json:"horoscope"`
}
