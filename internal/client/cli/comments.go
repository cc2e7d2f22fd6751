package cli

import (
	"context"
	"fmt"
	"os"
)

// Comment prompts for a recipe id and a comment text and posts the comment.
func (a *App) Comment(ctx context.Context) error {
	recipeID, err := getSimpleText(a.reader, "Enter recipe id", os.Stdout)
	if err != nil {
		return err
	}

	content, err := getSimpleText(a.reader, "Enter comment", os.Stdout)
	if err != nil {
		return err
	}

	comment, err := a.api.CreateComment(ctx, recipeID, content)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("Added comment", comment.ID)
	return nil
}

// Uncomment prompts for a comment id and deletes it. Only the comment's
// author may do so.
func (a *App) Uncomment(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter comment id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.DeleteComment(ctx, id); err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("Deleted")
	return nil
}
