package command

import (
	"context"
	"fmt"

	"barky/internal/github"
)

// StarLister walks a user's starred repositories.
type StarLister interface {
	ForEachStarred(ctx context.Context, username string, fn func(github.Repo) error) error
}

// ImportGitHubStars adds one bookmark per starred repository of github_username.
type ImportGitHubStars struct {
	Stars StarLister
	Add   AddBookmark
	// OnImported, when set, is called after each bookmark is stored.
	OnImported func(github.Repo)
}

func (c ImportGitHubStars) Execute(ctx context.Context, data Data) (Result, error) {
	if !data.has("github_username") {
		return Result{Message: "Error: GitHub username is required."}, nil
	}

	imported := 0
	err := c.Stars.ForEachStarred(ctx, data["github_username"], func(r github.Repo) error {
		res, err := c.Add.Execute(ctx, Data{
			"title": r.Name,
			"url":   r.HTMLURL,
			"notes": r.Description,
		})
		if err != nil {
			return err
		}
		// entries missing a name or html_url are skipped, not counted
		if res.Message != msgBookmarkAdded {
			return nil
		}
		imported++
		if c.OnImported != nil {
			c.OnImported(r)
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("import stars after %d: %w", imported, err)
	}
	return Result{Message: fmt.Sprintf("Imported %d GitHub stars as bookmarks.", imported)}, nil
}
