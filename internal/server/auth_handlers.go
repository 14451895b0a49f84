package server

import (
	"wayfarer/internal/service"

	"github.com/gofiber/fiber/v2"
)

// TestUsers handles GET /api/users/test
func (s *Server) TestUsers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"msg": "This test works"})
}

// Register handles POST /api/users/register
// @Summary Register a user
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,password=string,confirmpw=string} true "Registration"
// @Success 200 {object} object{id=int,name=string,email=string}
// @Failure 400 {object} object{register_error=string}
// @Router /users/register [post]
func (s *Server) Register(c *fiber.Ctx) error {
	var req service.RegisterInput
	if err := s.parseBody(c, &req, service.KeyRegister); err != nil {
		return nil
	}

	user, err := s.userService.Register(c.UserContext(), req)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// Login handles POST /api/users/login
// @Summary Sign in
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Credentials"
// @Success 200 {object} object{success=bool,token=string}
// @Failure 400 {object} object{signin_error=string}
// @Failure 404 {object} object{signin_error=string}
// @Router /users/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req service.LoginInput
	if err := s.parseBody(c, &req, service.KeySignIn); err != nil {
		return nil
	}

	token, err := s.userService.Login(c.UserContext(), req)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}
