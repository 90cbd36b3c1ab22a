package command

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"barky/internal/model"
)

type exportDoc struct {
	Bookmarks []model.Bookmark `yaml:"bookmarks"`
}

// ExportBookmarks writes every bookmark to Out as a YAML document.
type ExportBookmarks struct {
	List ListBookmarks
	Out  io.Writer
}

func (c ExportBookmarks) Execute(ctx context.Context, data Data) (Result, error) {
	res, err := c.List.Execute(ctx, data)
	if err != nil {
		return Result{}, err
	}

	enc := yaml.NewEncoder(c.Out)
	enc.SetIndent(2)
	if err := enc.Encode(exportDoc{Bookmarks: res.Bookmarks}); err != nil {
		return Result{}, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return Result{}, fmt.Errorf("encode yaml: %w", err)
	}
	return Result{Message: fmt.Sprintf("Exported %d bookmarks.", len(res.Bookmarks))}, nil
}
