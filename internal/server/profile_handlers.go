package server

import (
	"wayfarer/internal/models"
	"wayfarer/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfiles handles GET /api/profile/all
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.List(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(profiles)
}

// GetProfileByUsername handles GET /api/profile/username/:username
func (s *Server) GetProfileByUsername(c *fiber.Ctx) error {
	profile, err := s.profileService.GetByUsername(c.UserContext(), c.Params("username"))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(profile)
}

// GetMyProfile handles GET /api/profile
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetByUserID(c.UserContext(), s.identity(c).ID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(profile)
}

// UpsertRequiredInfo handles POST /api/profile/required
func (s *Server) UpsertRequiredInfo(c *fiber.Ctx) error {
	var req service.RequiredInfoInput
	if err := s.parseBody(c, &req, service.KeyProfileRequired); err != nil {
		return nil
	}

	profile, err := s.profileService.UpsertRequired(c.UserContext(), s.identity(c).ID, req)
	return s.respondProfile(c, profile, err)
}

// UpdateOptionalInfo handles POST /api/profile/info
func (s *Server) UpdateOptionalInfo(c *fiber.Ctx) error {
	var req service.OptionalInfoInput
	if err := s.parseBody(c, &req, service.KeyInput); err != nil {
		return nil
	}

	profile, err := s.profileService.UpdateOptional(c.UserContext(), s.identity(c).ID, req)
	return s.respondProfile(c, profile, err)
}

// AddLearningLanguage handles POST /api/profile/info/learning_languages
func (s *Server) AddLearningLanguage(c *fiber.Ctx) error {
	var req service.LearningLanguageInput
	if err := s.parseBody(c, &req, service.KeyInput); err != nil {
		return nil
	}

	profile, err := s.profileService.AddLearningLanguage(c.UserContext(), s.identity(c).ID, req)
	return s.respondProfile(c, profile, err)
}

// RemoveLearningLanguage handles DELETE /api/profile/info/learning_languages/:id
func (s *Server) RemoveLearningLanguage(c *fiber.Ctx) error {
	profile, err := s.profileService.RemoveLearningLanguage(c.UserContext(), s.identity(c).ID, c.Params("id"))
	return s.respondProfile(c, profile, err)
}

// AddTravelPlan handles POST /api/profile/info/travel_plans
func (s *Server) AddTravelPlan(c *fiber.Ctx) error {
	var req service.TravelPlanInput
	if err := s.parseBody(c, &req, service.KeyInput); err != nil {
		return nil
	}

	profile, err := s.profileService.AddTravelPlan(c.UserContext(), s.identity(c).ID, req)
	return s.respondProfile(c, profile, err)
}

// EditTravelPlan handles PUT /api/profile/info/travel_plans/:id
func (s *Server) EditTravelPlan(c *fiber.Ctx) error {
	var req service.TravelPlanInput
	if err := s.parseBody(c, &req, service.KeyInput); err != nil {
		return nil
	}

	profile, err := s.profileService.EditTravelPlan(c.UserContext(), s.identity(c).ID, c.Params("id"), req)
	return s.respondProfile(c, profile, err)
}

// RemoveTravelPlan handles DELETE /api/profile/info/travel_plans/:id
func (s *Server) RemoveTravelPlan(c *fiber.Ctx) error {
	profile, err := s.profileService.RemoveTravelPlan(c.UserContext(), s.identity(c).ID, c.Params("id"))
	return s.respondProfile(c, profile, err)
}

// DeleteAccount handles DELETE /api/profile. The user, their profile and
// their posts are removed.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.userService.DeleteAccount(c.UserContext(), s.identity(c).ID); err != nil {
		return s.respondError(c, err)
	}
	return success(c)
}

func (s *Server) respondProfile(c *fiber.Ctx, profile *models.Profile, err error) error {
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(profile)
}
