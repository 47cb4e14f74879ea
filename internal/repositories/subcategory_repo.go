package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"courseadmin/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SubCategoryRepository interface {
	Create(ctx context.Context, subcategory *models.SubCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SubCategory, error)
	Update(ctx context.Context, subcategory *models.SubCategory) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateFeatured(ctx context.Context, id uuid.UUID, featured int) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter models.ListFilter) ([]*models.SubCategory, error)
}

type subCategoryRepo struct {
	db Database
}

func NewSubCategoryRepo(db Database) SubCategoryRepository {
	return &subCategoryRepo{db: db}
}

func (r *subCategoryRepo) Create(ctx context.Context, subcategory *models.SubCategory) error {
	query := `
		INSERT INTO sub_categories (id, category_id, sub_category_name, image, status, is_featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, subcategory.ID, subcategory.CategoryID, subcategory.SubCategoryName,
		subcategory.Image, subcategory.Status, subcategory.IsFeatured)
	return err
}

func (r *subCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.SubCategory, error) {
	subcategory := &models.SubCategory{}
	query := `
		SELECT id, category_id, sub_category_name, image, status, is_featured, created_at, updated_at
		FROM sub_categories
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&subcategory.ID, &subcategory.CategoryID,
		&subcategory.SubCategoryName, &subcategory.Image, &subcategory.Status,
		&subcategory.IsFeatured, &subcategory.CreatedAt, &subcategory.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return subcategory, nil
}

func (r *subCategoryRepo) Update(ctx context.Context, subcategory *models.SubCategory) error {
	query := `
		UPDATE sub_categories
		SET category_id = $1, sub_category_name = $2, image = $3, updated_at = NOW()
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, subcategory.CategoryID, subcategory.SubCategoryName,
		subcategory.Image, subcategory.ID)
	return err
}

func (r *subCategoryRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE sub_categories SET status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}

func (r *subCategoryRepo) UpdateFeatured(ctx context.Context, id uuid.UUID, featured int) error {
	query := `UPDATE sub_categories SET is_featured = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, featured, id)
	return err
}

func (r *subCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM sub_categories WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

// List mirrors the category listing: conjunctive filters, identifier
// ordering for "a-z"/"z-a", recency for "latest". Each row carries the
// parent category's name for display.
func (r *subCategoryRepo) List(ctx context.Context, filter models.ListFilter) ([]*models.SubCategory, error) {
	query := `
		SELECT sc.id, sc.category_id, sc.sub_category_name, sc.image, sc.status, sc.is_featured,
		       sc.created_at, sc.updated_at, c.category_name
		FROM sub_categories sc
		JOIN categories c ON c.id = sc.category_id`

	var conds []string
	var args []any
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("sc.status = $%d", len(args)))
	}
	if filter.IsFeatured != nil {
		args = append(args, *filter.IsFeatured)
		conds = append(conds, fmt.Sprintf("sc.is_featured = $%d", len(args)))
	}
	if filter.SearchText != nil {
		args = append(args, "%"+*filter.SearchText+"%")
		conds = append(conds, fmt.Sprintf("sc.sub_category_name ILIKE $%d", len(args)))
	}
	if len(conds) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}

	switch filter.SortBy {
	case models.SortLatest:
		query += "\n\t\tORDER BY sc.created_at DESC"
	case models.SortAZ:
		query += "\n\t\tORDER BY sc.id ASC"
	case models.SortZA:
		query += "\n\t\tORDER BY sc.id DESC"
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subcategories []*models.SubCategory
	for rows.Next() {
		subcategory := &models.SubCategory{}
		if err := rows.Scan(&subcategory.ID, &subcategory.CategoryID, &subcategory.SubCategoryName,
			&subcategory.Image, &subcategory.Status, &subcategory.IsFeatured,
			&subcategory.CreatedAt, &subcategory.UpdatedAt, &subcategory.CategoryName); err != nil {
			return nil, err
		}
		subcategories = append(subcategories, subcategory)
	}
	return subcategories, rows.Err()
}
