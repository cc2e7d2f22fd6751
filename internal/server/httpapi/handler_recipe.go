package httpapi

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"

	"github.com/dvelasco/recetario/internal/server/services"
)

type recipeRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

func (r recipeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Ingredients, validation.Required),
		validation.Field(&r.Steps, validation.Required),
	)
}

func (r recipeRequest) input() services.RecipeInput {
	return services.RecipeInput{
		Title:       r.Title,
		Description: r.Description,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
	}
}

func (s *Server) createRecipe(c *fiber.Ctx) error {
	var req recipeRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "ingredients and steps must be JSON arrays")
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	recipe, err := s.recipes.Create(c.UserContext(), requesterID(c), req.input())
	if err != nil {
		return s.serviceError(c, "create recipe", err)
	}

	return c.Status(fiber.StatusCreated).JSON(recipeJSON(recipe))
}

func (s *Server) listRecipes(c *fiber.Ctx) error {
	recipes, err := s.recipes.List(c.UserContext())
	if err != nil {
		return s.serviceError(c, "list recipes", err)
	}
	return c.JSON(recipesJSON(recipes))
}

func (s *Server) getRecipe(c *fiber.Ctx) error {
	recipe, err := s.recipes.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return s.serviceError(c, "get recipe", err)
	}
	return c.JSON(recipeJSON(recipe))
}

func (s *Server) updateRecipe(c *fiber.Ctx) error {
	var req recipeRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "ingredients and steps must be JSON arrays")
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	recipe, err := s.recipes.Update(c.UserContext(), requesterID(c), c.Params("id"), req.input())
	if err != nil {
		return s.serviceError(c, "update recipe", err)
	}

	return c.JSON(recipeJSON(recipe))
}

func (s *Server) deleteRecipe(c *fiber.Ctx) error {
	if err := s.recipes.Delete(c.UserContext(), requesterID(c), c.Params("id")); err != nil {
		return s.serviceError(c, "delete recipe", err)
	}
	return c.JSON(fiber.Map{"message": "Recipe deleted successfully"})
}

// recipePermissions lets a client ask up front whether the edit and delete
// controls should be shown for a recipe.
func (s *Server) recipePermissions(c *fiber.Ctx) error {
	ok, err := s.recipes.CanModify(c.UserContext(), requesterID(c), c.Params("id"))
	if err != nil {
		return s.serviceError(c, "recipe permissions", err)
	}
	return c.JSON(fiber.Map{"canModify": ok})
}
