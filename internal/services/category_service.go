package services

import (
	"context"
	"strings"
	"time"

	"courseadmin/internal/caching"
	"courseadmin/internal/models"
	"courseadmin/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recordCacheTTL = 15 * time.Minute

type CategoryService interface {
	List(ctx context.Context, filter models.ListFilter) ([]*models.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	Create(ctx context.Context, name string, upload *Upload) (*models.Category, error)
	Update(ctx context.Context, id uuid.UUID, name string, upload *Upload) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleStatus(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ToggleFeatured(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	thumbnails   ThumbnailService
	cache        caching.CacheService
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, thumbnails ThumbnailService,
	cache caching.CacheService, logger *zap.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		thumbnails:   thumbnails,
		cache:        cache,
		logger:       logger,
	}
}

func (s *categoryService) List(ctx context.Context, filter models.ListFilter) ([]*models.Category, error) {
	return s.categoryRepo.List(ctx, filter)
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	if cached, err := s.cache.GetCategory(ctx, id); cached != nil {
		return cached, nil
	} else if err != nil {
		s.logger.Warn("category cache read failed", zap.String("id", id.String()), zap.Error(err))
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetCategory(ctx, category, recordCacheTTL); err != nil {
		s.logger.Warn("category cache write failed", zap.String("id", id.String()), zap.Error(err))
	}
	return category, nil
}

// Create validates the name and the required thumbnail before touching
// storage, then writes the blob and persists the record. A repository
// failure after the blob write is reported without deleting the blob.
func (s *categoryService) Create(ctx context.Context, name string, upload *Upload) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "category_name", Message: "Please provide a category name."}
	}

	key, err := s.thumbnails.Store(ctx, upload)
	if err != nil {
		return nil, err
	}

	category := &models.Category{
		ID:           uuid.New(),
		CategoryName: name,
		Image:        &key,
		Status:       models.StatusPending,
		IsFeatured:   0,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update replaces the name and, when a new file is supplied, the
// thumbnail. Validation failures abort before the existing image is
// touched; omitting the file leaves the image field as it was.
func (s *categoryService) Update(ctx context.Context, id uuid.UUID, name string, upload *Upload) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "category_name", Message: "Please provide a category name."}
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.CategoryName = name

	if upload != nil {
		key, err := s.thumbnails.Replace(ctx, category.Image, upload)
		if err != nil {
			return nil, err
		}
		category.Image = &key
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return category, nil
}

// Delete removes the record first; blob cleanup runs only after the row
// deletion succeeded and is best-effort.
func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	if category.Image != nil {
		s.thumbnails.Remove(ctx, *category.Image)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *categoryService) ToggleStatus(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category.Status == models.StatusPending {
		category.Status = models.StatusApproved
	} else {
		category.Status = models.StatusPending
	}
	if err := s.categoryRepo.UpdateStatus(ctx, id, category.Status); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return category, nil
}

func (s *categoryService) ToggleFeatured(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.IsFeatured = 1 - category.IsFeatured
	if err := s.categoryRepo.UpdateFeatured(ctx, id, category.IsFeatured); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return category, nil
}

func (s *categoryService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.DeleteCategory(ctx, id); err != nil {
		s.logger.Warn("category cache invalidation failed", zap.String("id", id.String()), zap.Error(err))
	}
}
