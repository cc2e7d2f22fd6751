package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

var getLines = GetLines

// List prints all recipes, newest first, as the server returns them.
func (a *App) List(ctx context.Context) error {
	recipes, err := a.api.ListRecipes(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if len(recipes) == 0 {
		fmt.Println("No recipes yet")
		return nil
	}

	for _, r := range recipes {
		fmt.Printf("%s  %s\n", r.ID, r.Title)
	}
	return nil
}

// Show prompts for a recipe id and prints the recipe with its comments.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter recipe id", os.Stdout)
	if err != nil {
		return err
	}

	recipe, err := a.api.GetRecipe(ctx, id)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println(recipe.Title)
	if recipe.Description != "" {
		fmt.Println(recipe.Description)
	}
	fmt.Println("Ingredients:", strings.Join(recipe.Ingredients, ", "))
	for i, step := range recipe.Steps {
		fmt.Printf("%d. %s\n", i+1, step)
	}

	comments, err := a.api.ListComments(ctx, id)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	if len(comments) > 0 {
		fmt.Println("Comments:")
		for _, c := range comments {
			fmt.Printf("  %s (%s): %s\n", c.ID, c.Username, c.Content)
		}
	}
	return nil
}

// Add prompts for the recipe fields and creates it under the logged-in user.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}

	ingredients, err := getLines(a.reader, "Enter ingredients", os.Stdout)
	if err != nil {
		return err
	}

	steps, err := getLines(a.reader, "Enter steps", os.Stdout)
	if err != nil {
		return err
	}

	recipe, err := a.api.CreateRecipe(ctx, title, description, ingredients, steps)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("Created recipe", recipe.ID)
	return nil
}

// Delete prompts for a recipe id and deletes it. The server refuses the
// request unless the logged-in user owns the recipe.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter recipe id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.DeleteRecipe(ctx, id); err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("Deleted")
	return nil
}
