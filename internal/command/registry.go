package command

import (
	"io"

	"barky/internal/github"
)

// Deps are the collaborators NewRegistry wires into the commands.
type Deps struct {
	Store   Store
	Stars   StarLister
	Out     io.Writer
	OrderBy string
	// OnImported is forwarded to ImportGitHubStars.
	OnImported func(github.Repo)
}

// NewRegistry returns the full command set keyed by the words the shell accepts.
func NewRegistry(d Deps) Registry {
	add := AddBookmark{Store: d.Store}
	list := ListBookmarks{Store: d.Store, OrderBy: d.OrderBy}

	imp := ImportGitHubStars{Stars: d.Stars, Add: add, OnImported: d.OnImported}

	return Registry{
		"init":   CreateBookmarksTable{Store: d.Store},
		"add":    add,
		"list":   list,
		"delete": DeleteBookmark{Store: d.Store},
		"edit":   EditBookmark{Store: d.Store},
		"import": imp,
		"export": ExportBookmarks{List: list, Out: d.Out},
		"quit":   Quit{},
	}
}
