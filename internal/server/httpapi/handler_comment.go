package httpapi

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
)

type createCommentRequest struct {
	RecipeID string `json:"recipeId"`
	Content  string `json:"content"`
}

func (r createCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RecipeID, validation.Required),
		validation.Field(&r.Content, validation.Required),
	)
}

type updateCommentRequest struct {
	Content string `json:"content"`
}

func (r updateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required),
	)
}

func (s *Server) createComment(c *fiber.Ctx) error {
	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	comment, err := s.comments.Create(c.UserContext(), requesterID(c), req.RecipeID, req.Content)
	if err != nil {
		return s.serviceError(c, "create comment", err)
	}

	return c.Status(fiber.StatusCreated).JSON(commentJSON(comment))
}

func (s *Server) listComments(c *fiber.Ctx) error {
	comments, err := s.comments.ListByRecipe(c.UserContext(), c.Params("id"))
	if err != nil {
		return s.serviceError(c, "list comments", err)
	}
	return c.JSON(fiber.Map{
		"count":    len(comments),
		"comments": commentsJSON(comments),
	})
}

func (s *Server) updateComment(c *fiber.Ctx) error {
	var req updateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	comment, err := s.comments.Update(c.UserContext(), requesterID(c), c.Params("id"), req.Content)
	if err != nil {
		return s.serviceError(c, "update comment", err)
	}

	return c.JSON(commentJSON(comment))
}

func (s *Server) deleteComment(c *fiber.Ctx) error {
	if err := s.comments.Delete(c.UserContext(), requesterID(c), c.Params("id")); err != nil {
		return s.serviceError(c, "delete comment", err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted successfully"})
}
