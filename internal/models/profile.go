package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type LanguageLevel string

const (
	LevelBeginner          LanguageLevel = "Beginner"
	LevelElementary        LanguageLevel = "Elementary"
	LevelIntermediate      LanguageLevel = "Intermediate"
	LevelUpperIntermediate LanguageLevel = "Upper Intermediate"
	LevelAdvanced          LanguageLevel = "Advanced"
	LevelExpert            LanguageLevel = "Expert"
)

// Profile is the single public-facing profile of a user.
type Profile struct {
	ID                uint                                  `gorm:"primaryKey" json:"id"`
	UserID            uint                                  `gorm:"uniqueIndex;not null" json:"-"`
	User              *User                                 `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Username          string                                `gorm:"size:50;uniqueIndex;not null" json:"username"`
	BirthDate         time.Time                             `gorm:"not null" json:"birth_date"`
	CurrentLocation   string                                `gorm:"size:50;not null" json:"current_location"`
	Gender            Gender                                `gorm:"size:10;not null" json:"gender"`
	Country           string                                `gorm:"size:100" json:"country,omitempty"`
	Hometown          string                                `gorm:"size:50" json:"hometown,omitempty"`
	Occupation        string                                `gorm:"size:50" json:"occupation,omitempty"`
	Bio               string                                `gorm:"type:text" json:"bio,omitempty"`
	Interests         datatypes.JSONSlice[string]           `json:"interests"`
	FluentLanguages   datatypes.JSONSlice[string]           `json:"fluent_languages"`
	LearningLanguages datatypes.JSONSlice[LearningLanguage] `json:"learning_languages"`
	TravelPlans       datatypes.JSONSlice[TravelPlan]       `json:"travel_plans"`
	Wishlist          datatypes.JSONSlice[string]           `json:"wishlist"`
	CountriesVisited  datatypes.JSONSlice[string]           `json:"countries_visited"`
	Social            Social                                `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Version           uint                                  `gorm:"not null;default:1" json:"-"`
	CreatedAt         time.Time                             `json:"date"`
}

type Social struct {
	Website   string `gorm:"size:255" json:"website,omitempty"`
	YouTube   string `gorm:"size:255" json:"youtube,omitempty"`
	Twitter   string `gorm:"size:255" json:"twitter,omitempty"`
	Facebook  string `gorm:"size:255" json:"facebook,omitempty"`
	Instagram string `gorm:"size:255" json:"instagram,omitempty"`
	LinkedIn  string `gorm:"size:255" json:"linkedin,omitempty"`
}

type LearningLanguage struct {
	ID       string        `json:"id"`
	Language string        `json:"language"`
	Level    LanguageLevel `json:"level,omitempty"`
}

// EntryID implements nested.Entry.
func (l LearningLanguage) EntryID() string { return l.ID }

type TravelPlan struct {
	ID                string    `json:"id"`
	Destination       string    `json:"destination"`
	ArrivalDate       time.Time `json:"arrival_date"`
	DepartureDate     time.Time `json:"departure_date"`
	NumberOfTravelers int       `json:"number_of_travelers"`
	Description       string    `json:"description"`
}

// EntryID implements nested.Entry.
func (t TravelPlan) EntryID() string { return t.ID }

// AfterFind replaces NULL collections with empty ones so clients always see arrays.
func (p *Profile) AfterFind(_ *gorm.DB) error {
	p.ensureCollections()
	return nil
}

func (p *Profile) ensureCollections() {
	if p.Interests == nil {
		p.Interests = datatypes.JSONSlice[string]{}
	}
	if p.FluentLanguages == nil {
		p.FluentLanguages = datatypes.JSONSlice[string]{}
	}
	if p.LearningLanguages == nil {
		p.LearningLanguages = datatypes.JSONSlice[LearningLanguage]{}
	}
	if p.TravelPlans == nil {
		p.TravelPlans = datatypes.JSONSlice[TravelPlan]{}
	}
	if p.Wishlist == nil {
		p.Wishlist = datatypes.JSONSlice[string]{}
	}
	if p.CountriesVisited == nil {
		p.CountriesVisited = datatypes.JSONSlice[string]{}
	}
}

// BeforeCreate stores empty collections rather than NULL.
func (p *Profile) BeforeCreate(_ *gorm.DB) error {
	p.ensureCollections()
	return nil
}

func (p *Profile) GetVersion() uint  { return p.Version }
func (p *Profile) SetVersion(v uint) { p.Version = v }
