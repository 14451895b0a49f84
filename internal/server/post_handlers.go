package server

import (
	"wayfarer/internal/models"
	"wayfarer/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/post/all
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.List(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(posts)
}

// CreatePost handles POST /api/post
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req service.CreatePostInput
	if err := s.parseBody(c, &req, service.KeyInput); err != nil {
		return nil
	}

	post, err := s.postService.Create(c.UserContext(), s.identity(c), req)
	return s.respondPost(c, post, err)
}

// DeletePost handles DELETE /api/post/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(c.UserContext(), s.identity(c).ID, id); err != nil {
		return s.respondError(c, err)
	}
	return success(c)
}

// LikePost handles POST /api/post/like/:post_id
func (s *Server) LikePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "post_id")
	if err != nil {
		return nil
	}

	post, err := s.postService.Like(c.UserContext(), s.identity(c).ID, id)
	return s.respondPost(c, post, err)
}

// UnlikePost handles DELETE /api/post/unlike/:post_id
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "post_id")
	if err != nil {
		return nil
	}

	post, err := s.postService.Unlike(c.UserContext(), s.identity(c).ID, id)
	return s.respondPost(c, post, err)
}

// CreateComment handles POST /api/post/comment/:post_id
func (s *Server) CreateComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "post_id")
	if err != nil {
		return nil
	}

	var req service.CommentInput
	if err := s.parseBody(c, &req, service.KeyInput); err != nil {
		return nil
	}

	post, err := s.postService.AddComment(c.UserContext(), s.identity(c), id, req)
	return s.respondPost(c, post, err)
}

// DeleteComment handles DELETE /api/post/comment/:post_id/:comment_id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "post_id")
	if err != nil {
		return nil
	}

	post, err := s.postService.DeleteComment(c.UserContext(), s.identity(c).ID, id, c.Params("comment_id"))
	return s.respondPost(c, post, err)
}

func (s *Server) respondPost(c *fiber.Ctx, post *models.Post, err error) error {
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(post)
}
