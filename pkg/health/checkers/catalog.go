package checkers

import (
	"context"
	"errors"

	"github.com/artem13815/skillpath/pkg/catalog"
)

// CatalogChecker reports readiness of the in-memory datasets: both
// catalogs must have been loaded and be non-empty.
type CatalogChecker struct {
	cat *catalog.Catalog
}

func NewCatalogChecker(cat *catalog.Catalog) *CatalogChecker {
	return &CatalogChecker{cat: cat}
}

func (c *CatalogChecker) Name() string { return "catalog" }

func (c *CatalogChecker) Check(_ context.Context) error {
	if c.cat == nil {
		return errors.New("catalog not loaded")
	}
	if len(c.cat.Jobs) == 0 {
		return errors.New("job catalog is empty")
	}
	if len(c.cat.Courses) == 0 {
		return errors.New("course catalog is empty")
	}
	return nil
}
