package focus

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/focus/pkg/apiclient"
)

// Category routes on the resource service.
const (
	PathCategoriesList      = "/categories/list"
	PathCategoriesCreate    = "/categories/create"
	PathCategoriesDelete    = "/categories/delete"
	PathCategoriesArchive   = "/categories/archive"
	PathCategoriesUnarchive = "/categories/unarchive"
)

// Categories calls the category endpoints.
type Categories struct {
	client *apiclient.Client
	gate   Gate
}

// NewCategories returns a category module. A nil gate never blocks.
func NewCategories(client *apiclient.Client, gate Gate) *Categories {
	return &Categories{client: client, gate: gateOrOpen(gate)}
}

// List returns all categories, archived ones included.
// An empty or non-JSON response yields an empty slice.
func (c *Categories) List(ctx context.Context) ([]Category, error) {
	if err := c.gate.Ready(); err != nil {
		return nil, err
	}
	list, err := apiclient.Request[[]Category](ctx, c.client, PathCategoriesList)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if list == nil {
		return []Category{}, nil
	}
	return *list, nil
}

// Create adds a category. The name is trimmed; color may be a preset key, a
// hex value, or empty for the default.
func (c *Categories) Create(ctx context.Context, in CreateCategoryInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return ErrEmptyName
	}
	color, err := NormalizeColor(in.Color)
	if err != nil {
		return err
	}
	in.Color = color
	return c.post(ctx, PathCategoriesCreate, in)
}

// Delete removes a category.
func (c *Categories) Delete(ctx context.Context, categoryID string) error {
	return c.mutate(ctx, PathCategoriesDelete, categoryID)
}

// Archive hides a category from new sessions.
func (c *Categories) Archive(ctx context.Context, categoryID string) error {
	return c.mutate(ctx, PathCategoriesArchive, categoryID)
}

// Unarchive restores an archived category.
func (c *Categories) Unarchive(ctx context.Context, categoryID string) error {
	return c.mutate(ctx, PathCategoriesUnarchive, categoryID)
}

func (c *Categories) mutate(ctx context.Context, path, categoryID string) error {
	if categoryID == "" {
		return ErrEmptyID
	}
	return c.post(ctx, path, categoryRef{CategoryID: categoryID})
}

func (c *Categories) post(ctx context.Context, path string, body any) error {
	if err := c.gate.Ready(); err != nil {
		return err
	}
	_, err := c.client.Do(ctx, path,
		apiclient.WithMethod(http.MethodPost),
		apiclient.WithBody(body),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
