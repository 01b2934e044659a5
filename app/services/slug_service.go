package services

import (
	"context"
	"fmt"
	"log"

	"github.com/DevarshLade/lade-studio/app/helpers"
	"github.com/DevarshLade/lade-studio/app/repositories"
)

// SlugService backfills and normalizes product slugs. The legacy store never
// enforced the slug invariant at write time and accumulated several one-off
// repair scripts; this is the single consolidated repair path, runnable from
// the CLI and from an admin endpoint.
type SlugService struct {
	productRepo repositories.ProductRepositoryImpl
}

func NewSlugService(productRepo repositories.ProductRepositoryImpl) *SlugService {
	return &SlugService{productRepo: productRepo}
}

type SlugRepairResult struct {
	Scanned  int      `json:"scanned"`
	Repaired int      `json:"repaired"`
	Slugs    []string `json:"slugs"`
}

// RepairSlugs rewrites every slug that is empty or not in normalized form,
// de-duplicating against existing rows with a numeric suffix.
func (s *SlugService) RepairSlugs(ctx context.Context) (*SlugRepairResult, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	result := &SlugRepairResult{Scanned: len(products)}

	for _, product := range products {
		want := helpers.GenerateSlug(product.Name)
		if product.Slug == want {
			continue
		}
		// A previously repaired duplicate keeps its suffixed slug.
		if product.Slug != "" && helpers.GenerateSlug(product.Slug) == product.Slug && hasSlugBase(product.Slug, want) {
			continue
		}

		unique, err := s.uniqueSlug(ctx, want, product.ID)
		if err != nil {
			return nil, err
		}
		if err := s.productRepo.UpdateSlug(ctx, product.ID, unique); err != nil {
			return nil, fmt.Errorf("failed to update slug for product %s: %w", product.ID, err)
		}
		log.Printf("SlugService: repaired product %s: %q -> %q", product.ID, product.Slug, unique)
		result.Repaired++
		result.Slugs = append(result.Slugs, unique)
	}
	return result, nil
}

func (s *SlugService) uniqueSlug(ctx context.Context, base, excludeID string) (string, error) {
	candidate := base
	for i := 2; ; i++ {
		exists, err := s.productRepo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("failed to check slug %q: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func hasSlugBase(slug, base string) bool {
	if slug == base {
		return true
	}
	if len(slug) <= len(base)+1 || slug[:len(base)] != base || slug[len(base)] != '-' {
		return false
	}
	for _, r := range slug[len(base)+1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
