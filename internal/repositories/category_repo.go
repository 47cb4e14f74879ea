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

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateFeatured(ctx context.Context, id uuid.UUID, featured int) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter models.ListFilter) ([]*models.Category, error)
}

type categoryRepo struct {
	db Database
}

func NewCategoryRepo(db Database) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (id, category_name, image, status, is_featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, category.ID, category.CategoryName, category.Image,
		category.Status, category.IsFeatured)
	return err
}

func (r *categoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category := &models.Category{}
	query := `
		SELECT id, category_name, image, status, is_featured, created_at, updated_at
		FROM categories
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&category.ID, &category.CategoryName, &category.Image,
		&category.Status, &category.IsFeatured, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

func (r *categoryRepo) Update(ctx context.Context, category *models.Category) error {
	query := `
		UPDATE categories
		SET category_name = $1, image = $2, updated_at = NOW()
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, category.CategoryName, category.Image, category.ID)
	return err
}

func (r *categoryRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE categories SET status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}

func (r *categoryRepo) UpdateFeatured(ctx context.Context, id uuid.UUID, featured int) error {
	query := `UPDATE categories SET is_featured = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, featured, id)
	return err
}

func (r *categoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

// List applies every supplied filter as a conjunctive predicate and
// returns each category with its subcategory count. Sorting by "a-z"
// and "z-a" orders by identifier, not by name; "latest" orders by
// creation recency, and anything else keeps the natural order.
func (r *categoryRepo) List(ctx context.Context, filter models.ListFilter) ([]*models.Category, error) {
	query := `
		SELECT c.id, c.category_name, c.image, c.status, c.is_featured, c.created_at, c.updated_at,
		       COUNT(sc.id) AS sub_category_count
		FROM categories c
		LEFT JOIN sub_categories sc ON sc.category_id = c.id`

	var conds []string
	var args []any
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("c.status = $%d", len(args)))
	}
	if filter.IsFeatured != nil {
		args = append(args, *filter.IsFeatured)
		conds = append(conds, fmt.Sprintf("c.is_featured = $%d", len(args)))
	}
	if filter.SearchText != nil {
		args = append(args, "%"+*filter.SearchText+"%")
		conds = append(conds, fmt.Sprintf("c.category_name ILIKE $%d", len(args)))
	}
	if len(conds) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\t\tGROUP BY c.id"

	switch filter.SortBy {
	case models.SortLatest:
		query += "\n\t\tORDER BY c.created_at DESC"
	case models.SortAZ:
		query += "\n\t\tORDER BY c.id ASC"
	case models.SortZA:
		query += "\n\t\tORDER BY c.id DESC"
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		category := &models.Category{}
		if err := rows.Scan(&category.ID, &category.CategoryName, &category.Image,
			&category.Status, &category.IsFeatured, &category.CreatedAt, &category.UpdatedAt,
			&category.SubCategoryCount); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}
