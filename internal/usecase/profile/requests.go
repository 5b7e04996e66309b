package profile

// ProfileRequest represents profile create/replace request
type ProfileRequest struct {
	FullName       string   `json:"full_name" binding:"required,min=2,max=100"`
	Gender         string   `json:"gender" binding:"required,gender"`
	DateOfBirth    string   `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	Height         *int     `json:"height" binding:"omitempty,min=100,max=250"`
	MaritalStatus  string   `json:"marital_status" binding:"required,max=64"`
	Religion       string   `json:"religion" binding:"required,max=64"`
	MotherTongue   string   `json:"mother_tongue" binding:"required,max=64"`
	Caste          *string  `json:"caste" binding:"omitempty,max=128"`
	Subcaste       *string  `json:"subcaste" binding:"omitempty,max=128"`
	Gotram         *string  `json:"gotram" binding:"omitempty,max=128"`
	Location       string   `json:"location" binding:"required,max=255"`
	State          string   `json:"state" binding:"required,max=128"`
	City           string   `json:"city" binding:"required,max=128"`
	Country        string   `json:"country" binding:"omitempty,max=128"`
	About          *string  `json:"about" binding:"omitempty,max=1000"`
	Hobbies        []string `json:"hobbies" binding:"omitempty,max=20,dive,max=64"`
	ProfilePicture *string  `json:"profile_picture" binding:"omitempty,url"`
}

// EducationRequest represents education details request
type EducationRequest struct {
	HighestEducation string  `json:"highest_education" binding:"required,max=128"`
	College          *string `json:"college" binding:"omitempty,max=255"`
	Degree           *string `json:"degree" binding:"omitempty,max=128"`
	YearOfPassing    *int    `json:"year_of_passing" binding:"omitempty,min=1950,max=2100"`
}

// CareerRequest represents career details request
type CareerRequest struct {
	Occupation   string  `json:"occupation" binding:"required,max=128"`
	EmployedIn   *string `json:"employed_in" binding:"omitempty,max=128"`
	Company      *string `json:"company" binding:"omitempty,max=255"`
	AnnualIncome *string `json:"annual_income" binding:"omitempty,max=64"`
}

// FamilyRequest represents family details request
type FamilyRequest struct {
	FatherStatus    *string `json:"father_status" binding:"omitempty,max=128"`
	MotherStatus    *string `json:"mother_status" binding:"omitempty,max=128"`
	FamilyType      *string `json:"family_type" binding:"omitempty,max=64"`
	FamilyValues    *string `json:"family_values" binding:"omitempty,max=64"`
	FamilyAffluence *string `json:"family_affluence" binding:"omitempty,max=64"`
	Siblings        *int    `json:"siblings" binding:"omitempty,min=0,max=20"`
}

// PreferencesRequest represents partner preferences request
type PreferencesRequest struct {
	MinAge               *int     `json:"min_age" binding:"omitempty,min=18,max=100"`
	MaxAge               *int     `json:"max_age" binding:"omitempty,min=18,max=100"`
	MinHeight            *int     `json:"min_height" binding:"omitempty,min=100,max=250"`
	MaxHeight            *int     `json:"max_height" binding:"omitempty,min=100,max=250"`
	MaritalStatus        []string `json:"marital_status" binding:"omitempty,dive,max=64"`
	Religion             []string `json:"religion" binding:"omitempty,dive,max=64"`
	Caste                []string `json:"caste" binding:"omitempty,dive,max=128"`
	MotherTongue         []string `json:"mother_tongue" binding:"omitempty,dive,max=64"`
	Location             []string `json:"location" binding:"omitempty,dive,max=255"`
	Education            []string `json:"education" binding:"omitempty,dive,max=128"`
	Occupation           []string `json:"occupation" binding:"omitempty,dive,max=128"`
	Income               []string `json:"income" binding:"omitempty,dive,max=64"`
	SpecificRequirements *string  `json:"specific_requirements" binding:"omitempty,max=1000"`
}

// HoroscopeRequest represents birth chart request
type HoroscopeRequest struct {
	DateOfBirth  *string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	TimeOfBirth  *string `json:"time_of_birth" binding:"omitempty,max=16"`
	PlaceOfBirth *string `json:"place_of_birth" binding:"omitempty,max=255"`
	Manglik      bool    `json:"manglik"`
	Sun          *string `json:"sun" binding:"omitempty,zodiac"`
	Moon         *string `json:"moon" binding:"omitempty,zodiac"`
	Venus        *string `json:"venus" binding:"omitempty,zodiac"`
	Mars         *string `json:"mars" binding:"omitempty,zodiac"`
	Mercury      *string `json:"mercury" binding:"omitempty,zodiac"`
	Jupiter      *string `json:"jupiter" binding:"omitempty,zodiac"`
	Saturn       *string `json:"saturn" binding:"omitempty,zodiac"`
	Rahu         *string `json:"rahu" binding:"omitempty,zodiac"`
	Ketu         *string `json:"ketu" binding:"omitempty,zodiac"`
	Nakshatra    *string `json:"nakshatra" binding:"omitempty,nakshatra"`
}
