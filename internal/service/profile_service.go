package service

import (
	"context"
	"errors"
	"strings"

	"wayfarer/internal/models"
	"wayfarer/internal/nested"
	"wayfarer/internal/observability"
	"wayfarer/internal/repository"
	"wayfarer/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

type RequiredInfoInput struct {
	Username        string `json:"username" validate:"required,min=3,max=50"`
	BirthDate       string `json:"birth_date" validate:"required,isodate"`
	CurrentLocation string `json:"current_location" validate:"required,min=3,max=50"`
	Gender          string `json:"gender" validate:"required,oneof=Male Female Other"`
}

// OptionalInfoInput updates the optional profile fields. A field left out of
// the request is untouched; a field sent empty is cleared.
type OptionalInfoInput struct {
	Country          models.Optional[string] `json:"country" validate:"omitempty,min=2,max=100"`
	Hometown         models.Optional[string] `json:"hometown" validate:"omitempty,min=2,max=50"`
	Occupation       models.Optional[string] `json:"occupation" validate:"omitempty,min=2,max=50"`
	Bio              models.Optional[string] `json:"bio" validate:"omitempty,min=2,max=1000"`
	Interests        models.Optional[string] `json:"interests"`
	FluentLanguages  models.Optional[string] `json:"fluent_languages"`
	Wishlist         models.Optional[string] `json:"wishlist"`
	CountriesVisited models.Optional[string] `json:"countries_visited"`
	Website          models.Optional[string] `json:"website" validate:"omitempty,url"`
	YouTube          models.Optional[string] `json:"youtube" validate:"omitempty,url"`
	Twitter          models.Optional[string] `json:"twitter" validate:"omitempty,url"`
	Facebook         models.Optional[string] `json:"facebook" validate:"omitempty,url"`
	Instagram        models.Optional[string] `json:"instagram" validate:"omitempty,url"`
	LinkedIn         models.Optional[string] `json:"linkedin" validate:"omitempty,url"`
}

type LearningLanguageInput struct {
	Language string `json:"language" validate:"required,min=2,max=50"`
	Level    string `json:"level" validate:"omitempty,oneof=Beginner Elementary Intermediate 'Upper Intermediate' Advanced Expert"`
}

type TravelPlanInput struct {
	Destination       string `json:"destination" validate:"required,min=2,max=50"`
	ArrivalDate       string `json:"arrival_date" validate:"required,isodate"`
	DepartureDate     string `json:"departure_date" validate:"required,isodate"`
	NumberOfTravelers int    `json:"number_of_travelers" validate:"min=1,max=100"`
	Description       string `json:"description" validate:"required,min=3,max=300"`
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) List(ctx context.Context) ([]*models.Profile, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if len(profiles) == 0 {
		return nil, models.NewNotFoundError(KeyNoProfiles, "There are no profiles")
	}
	return profiles, nil
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fromRepo(err, errProfileNotFound)
	}
	return profile, nil
}

func (s *ProfileService) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUsername(ctx, validation.NormalizeUsername(username))
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if profile == nil {
		return nil, errProfileNotFound()
	}
	return profile, nil
}

// UpsertRequired creates the caller's profile or replaces its required fields.
func (s *ProfileService) UpsertRequired(ctx context.Context, userID uint, in RequiredInfoInput) (*models.Profile, error) {
	in.Username = validation.NormalizeUsername(in.Username)
	in.CurrentLocation = strings.TrimSpace(in.CurrentLocation)

	if fields := validation.Struct(in); len(fields) > 0 {
		return nil, models.NewFieldValidationError(KeyProfileRequired, fields)
	}
	birthDate, _ := validation.ParseDate(in.BirthDate)

	apply := func(p *models.Profile) {
		p.Username = in.Username
		p.BirthDate = birthDate
		p.CurrentLocation = in.CurrentLocation
		p.Gender = models.Gender(in.Gender)
	}

	// A duplicate on create is either the username index or a concurrent first
	// submission by the same user; the second pass updates in the latter case.
	for attempt := 0; attempt < 2; attempt++ {
		profile, err := s.profileRepo.Mutate(ctx, userID, func(p *models.Profile) error {
			if err := s.ensureUsernameFree(ctx, in.Username, userID); err != nil {
				return err
			}
			apply(p)
			return nil
		})
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errUsernameTaken()
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return profile, fromRepo(err, nil)
		}

		if err := s.ensureUsernameFree(ctx, in.Username, userID); err != nil {
			return nil, err
		}

		profile = &models.Profile{UserID: userID}
		apply(profile)
		err = s.profileRepo.Create(ctx, profile)
		if err == nil {
			return profile, nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, models.NewInternalError(err)
		}
	}
	return nil, errUsernameTaken()
}

// ensureUsernameFree fails when a profile other than the caller's owns username.
func (s *ProfileService) ensureUsernameFree(ctx context.Context, username string, userID uint) error {
	owner, err := s.profileRepo.FindByUsername(ctx, username)
	if err != nil {
		return models.NewInternalError(err)
	}
	if owner != nil && owner.UserID != userID {
		return errUsernameTaken()
	}
	return nil
}

func (s *ProfileService) UpdateOptional(ctx context.Context, userID uint, in OptionalInfoInput) (*models.Profile, error) {
	if err := firstInvalid(KeyInput, validation.Struct(in)); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.Mutate(ctx, userID, func(p *models.Profile) error {
		applyText(&p.Country, in.Country)
		applyText(&p.Hometown, in.Hometown)
		applyText(&p.Occupation, in.Occupation)
		applyText(&p.Bio, in.Bio)
		applyList(&p.Interests, in.Interests, true)
		applyList(&p.FluentLanguages, in.FluentLanguages, true)
		applyList(&p.Wishlist, in.Wishlist, false)
		applyList(&p.CountriesVisited, in.CountriesVisited, false)
		applyText(&p.Social.Website, in.Website)
		applyText(&p.Social.YouTube, in.YouTube)
		applyText(&p.Social.Twitter, in.Twitter)
		applyText(&p.Social.Facebook, in.Facebook)
		applyText(&p.Social.Instagram, in.Instagram)
		applyText(&p.Social.LinkedIn, in.LinkedIn)
		return nil
	})
	return profile, fromRepo(err, errAddRequiredInfo)
}

func applyText(dst *string, v models.Optional[string]) {
	if v.Set {
		*dst = strings.TrimSpace(v.Value)
	}
}

func applyList(dst *datatypes.JSONSlice[string], v models.Optional[string], lower bool) {
	if v.Set {
		*dst = validation.SplitList(v.Value, lower)
	}
}

// AddLearningLanguage appends a language, stored lowercase, unless one with
// the same name (ignoring case) is already listed.
func (s *ProfileService) AddLearningLanguage(ctx context.Context, userID uint, in LearningLanguageInput) (*models.Profile, error) {
	in.Language = strings.ToLower(strings.TrimSpace(in.Language))
	if err := firstInvalid(KeyInput, validation.Struct(in)); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.Mutate(ctx, userID, func(p *models.Profile) error {
		if nested.Contains(p.LearningLanguages, func(l models.LearningLanguage) bool {
			return strings.EqualFold(l.Language, in.Language)
		}) {
			return models.NewConflictError(KeyLanguageAdded, "Language already added").
				WithStatus(fiber.StatusBadRequest)
		}
		p.LearningLanguages = nested.Append(p.LearningLanguages, models.LearningLanguage{
			ID:       nested.NewID(),
			Language: in.Language,
			Level:    models.LanguageLevel(in.Level),
		})
		return nil
	})
	observability.RecordMutation("learning_languages", "add", err)
	return profile, fromRepo(err, errAddRequiredInfo)
}

func (s *ProfileService) RemoveLearningLanguage(ctx context.Context, userID uint, entryID string) (*models.Profile, error) {
	profile, err := s.profileRepo.Mutate(ctx, userID, func(p *models.Profile) error {
		remaining, ok := nested.Remove(p.LearningLanguages, entryID)
		if !ok {
			return models.NewNotFoundError(KeyLanguageNotFound, "Language not found")
		}
		p.LearningLanguages = remaining
		return nil
	})
	observability.RecordMutation("learning_languages", "remove", err)
	return profile, fromRepo(err, errAddRequiredInfo)
}

// AddTravelPlan puts the new plan first.
func (s *ProfileService) AddTravelPlan(ctx context.Context, userID uint, in TravelPlanInput) (*models.Profile, error) {
	plan, err := travelPlanFrom(in)
	if err != nil {
		return nil, err
	}
	plan.ID = nested.NewID()

	profile, err := s.profileRepo.Mutate(ctx, userID, func(p *models.Profile) error {
		p.TravelPlans = nested.Prepend(p.TravelPlans, plan)
		return nil
	})
	observability.RecordMutation("travel_plans", "add", err)
	return profile, fromRepo(err, errAddRequiredInfo)
}

// EditTravelPlan replaces every field of the plan, keeping its id and position.
func (s *ProfileService) EditTravelPlan(ctx context.Context, userID uint, entryID string, in TravelPlanInput) (*models.Profile, error) {
	plan, err := travelPlanFrom(in)
	if err != nil {
		return nil, err
	}
	plan.ID = entryID

	profile, err := s.profileRepo.Mutate(ctx, userID, func(p *models.Profile) error {
		updated, ok := nested.Replace(p.TravelPlans, entryID, plan)
		if !ok {
			return models.NewNotFoundError(KeyTravelNotFound, "Travel plan not found")
		}
		p.TravelPlans = updated
		return nil
	})
	observability.RecordMutation("travel_plans", "edit", err)
	return profile, fromRepo(err, errAddRequiredInfo)
}

func (s *ProfileService) RemoveTravelPlan(ctx context.Context, userID uint, entryID string) (*models.Profile, error) {
	profile, err := s.profileRepo.Mutate(ctx, userID, func(p *models.Profile) error {
		remaining, ok := nested.Remove(p.TravelPlans, entryID)
		if !ok {
			return models.NewNotFoundError(KeyTravelNotFound, "Travel plan not found")
		}
		p.TravelPlans = remaining
		return nil
	})
	observability.RecordMutation("travel_plans", "remove", err)
	return profile, fromRepo(err, errAddRequiredInfo)
}

func travelPlanFrom(in TravelPlanInput) (models.TravelPlan, error) {
	in.Destination = strings.TrimSpace(in.Destination)
	in.Description = strings.TrimSpace(in.Description)
	if err := firstInvalid(KeyInput, validation.Struct(in)); err != nil {
		return models.TravelPlan{}, err
	}

	arrival, _ := validation.ParseDate(in.ArrivalDate)
	departure, _ := validation.ParseDate(in.DepartureDate)
	return models.TravelPlan{
		Destination:       in.Destination,
		ArrivalDate:       arrival,
		DepartureDate:     departure,
		NumberOfTravelers: in.NumberOfTravelers,
		Description:       in.Description,
	}, nil
}
