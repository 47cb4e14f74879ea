package services

import (
	"context"
	"errors"
	"strings"

	"courseadmin/internal/caching"
	"courseadmin/internal/models"
	"courseadmin/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SubCategoryService interface {
	List(ctx context.Context, filter models.ListFilter) ([]*models.SubCategory, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.SubCategory, error)
	Create(ctx context.Context, categoryID uuid.UUID, name string, upload *Upload) (*models.SubCategory, error)
	Update(ctx context.Context, id, categoryID uuid.UUID, name string, upload *Upload) (*models.SubCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleStatus(ctx context.Context, id uuid.UUID) (*models.SubCategory, error)
	ToggleFeatured(ctx context.Context, id uuid.UUID) (*models.SubCategory, error)
}

type subCategoryService struct {
	subCategoryRepo repositories.SubCategoryRepository
	categoryRepo    repositories.CategoryRepository
	thumbnails      ThumbnailService
	cache           caching.CacheService
	logger          *zap.Logger
}

func NewSubCategoryService(subCategoryRepo repositories.SubCategoryRepository,
	categoryRepo repositories.CategoryRepository, thumbnails ThumbnailService,
	cache caching.CacheService, logger *zap.Logger) SubCategoryService {
	return &subCategoryService{
		subCategoryRepo: subCategoryRepo,
		categoryRepo:    categoryRepo,
		thumbnails:      thumbnails,
		cache:           cache,
		logger:          logger,
	}
}

func (s *subCategoryService) List(ctx context.Context, filter models.ListFilter) ([]*models.SubCategory, error) {
	return s.subCategoryRepo.List(ctx, filter)
}

func (s *subCategoryService) GetByID(ctx context.Context, id uuid.UUID) (*models.SubCategory, error) {
	if cached, err := s.cache.GetSubCategory(ctx, id); cached != nil {
		return cached, nil
	} else if err != nil {
		s.logger.Warn("subcategory cache read failed", zap.String("id", id.String()), zap.Error(err))
	}

	subcategory, err := s.subCategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetSubCategory(ctx, subcategory, recordCacheTTL); err != nil {
		s.logger.Warn("subcategory cache write failed", zap.String("id", id.String()), zap.Error(err))
	}
	return subcategory, nil
}

func (s *subCategoryService) Create(ctx context.Context, categoryID uuid.UUID, name string, upload *Upload) (*models.SubCategory, error) {
	if err := s.validateInput(ctx, categoryID, name); err != nil {
		return nil, err
	}

	key, err := s.thumbnails.Store(ctx, upload)
	if err != nil {
		return nil, err
	}

	subcategory := &models.SubCategory{
		ID:              uuid.New(),
		CategoryID:      categoryID,
		SubCategoryName: name,
		Image:           &key,
		Status:          models.StatusPending,
		IsFeatured:      0,
	}
	if err := s.subCategoryRepo.Create(ctx, subcategory); err != nil {
		return nil, err
	}
	return subcategory, nil
}

func (s *subCategoryService) Update(ctx context.Context, id, categoryID uuid.UUID, name string, upload *Upload) (*models.SubCategory, error) {
	if err := s.validateInput(ctx, categoryID, name); err != nil {
		return nil, err
	}

	subcategory, err := s.subCategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	subcategory.CategoryID = categoryID
	subcategory.SubCategoryName = name

	if upload != nil {
		key, err := s.thumbnails.Replace(ctx, subcategory.Image, upload)
		if err != nil {
			return nil, err
		}
		subcategory.Image = &key
	}

	if err := s.subCategoryRepo.Update(ctx, subcategory); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return subcategory, nil
}

func (s *subCategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	subcategory, err := s.subCategoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.subCategoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	if subcategory.Image != nil {
		s.thumbnails.Remove(ctx, *subcategory.Image)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *subCategoryService) ToggleStatus(ctx context.Context, id uuid.UUID) (*models.SubCategory, error) {
	subcategory, err := s.subCategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subcategory.Status == models.StatusPending {
		subcategory.Status = models.StatusApproved
	} else {
		subcategory.Status = models.StatusPending
	}
	if err := s.subCategoryRepo.UpdateStatus(ctx, id, subcategory.Status); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return subcategory, nil
}

func (s *subCategoryService) ToggleFeatured(ctx context.Context, id uuid.UUID) (*models.SubCategory, error) {
	subcategory, err := s.subCategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	subcategory.IsFeatured = 1 - subcategory.IsFeatured
	if err := s.subCategoryRepo.UpdateFeatured(ctx, id, subcategory.IsFeatured); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return subcategory, nil
}

// validateInput checks the name and that the parent category is live.
// Both checks run before any storage side effect.
func (s *subCategoryService) validateInput(ctx context.Context, categoryID uuid.UUID, name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "sub_category_name", Message: "Please provide a sub-category name."}
	}
	if categoryID == uuid.Nil {
		return &ValidationError{Field: "category_id", Message: "Please select a category."}
	}
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &ValidationError{Field: "category_id", Message: "Please select a category."}
		}
		return err
	}
	return nil
}

func (s *subCategoryService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.DeleteSubCategory(ctx, id); err != nil {
		s.logger.Warn("subcategory cache invalidation failed", zap.String("id", id.String()), zap.Error(err))
	}
}
