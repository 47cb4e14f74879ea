package handlers

import (
	"errors"
	"net/http"

	"courseadmin/internal/models"
	"courseadmin/internal/repositories"
	"courseadmin/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandlers handles category-related HTTP requests
type CategoryHandlers struct {
	categories services.CategoryService
}

// NewCategoryHandlers creates a new category handlers instance
func NewCategoryHandlers(categories services.CategoryService) *CategoryHandlers {
	return &CategoryHandlers{categories: categories}
}

// ListRequest represents the filter/sort query parameters of the list
// endpoints. Absent parameters impose no constraint.
type ListRequest struct {
	Status     *string `query:"status"`
	IsFeatured *int    `query:"is_featured"`
	SearchText *string `query:"search_text"`
	SortBy     string  `query:"sort_by"`
}

func (req *ListRequest) filter() models.ListFilter {
	return models.ListFilter{
		Status:     req.Status,
		IsFeatured: req.IsFeatured,
		SearchText: req.SearchText,
		SortBy:     req.SortBy,
	}
}

// CategoryForm represents the multipart store/update payload. The image
// part is read separately from the form data.
type CategoryForm struct {
	CategoryName string `form:"category_name" validate:"required"`
}

// ListCategories handles getting the filtered, sorted category listing
func (h *CategoryHandlers) ListCategories(c echo.Context) error {
	var req ListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	categories, err := h.categories.List(c.Request().Context(), req.filter())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list categories")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}

// CreateForm returns the data the create-form fragment is built from
func (h *CategoryHandlers) CreateForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"form": "category-form",
	})
}

// EditForm returns the edit-form fragment data with the current record
func (h *CategoryHandlers) EditForm(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid category ID format")
	}

	category, err := h.categories.GetByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Category not found")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"form":     "category-form",
		"category": category,
	})
}

// StoreCategory handles creating a new category with its thumbnail
func (h *CategoryHandlers) StoreCategory(c echo.Context) error {
	var form CategoryForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&form); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{"errors": formErrors(err)})
	}

	upload, closeUpload, err := formUpload(c, "image")
	if err != nil {
		return writeFormError(c, err, "Category not found", "Failed to save Category.")
	}
	if closeUpload != nil {
		defer closeUpload()
	}

	category, err := h.categories.Create(c.Request().Context(), form.CategoryName, upload)
	if err != nil {
		return writeFormError(c, err, "Category not found", "Failed to save Category.")
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "Category added successfully!",
		"category": category,
	})
}

// UpdateCategory handles updating a category; the image is optional and
// omitting it leaves the stored thumbnail untouched
func (h *CategoryHandlers) UpdateCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid category ID format")
	}

	var form CategoryForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&form); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{"errors": formErrors(err)})
	}

	upload, closeUpload, err := formUpload(c, "image")
	if err != nil {
		return writeFormError(c, err, "Category not found", "Failed to save Category.")
	}
	if closeUpload != nil {
		defer closeUpload()
	}

	category, err := h.categories.Update(c.Request().Context(), id, form.CategoryName, upload)
	if err != nil {
		return writeFormError(c, err, "Category not found", "Failed to save Category.")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Category updated successfully!",
		"category": category,
	})
}

// DeleteCategory handles deleting a category and its thumbnail blob
func (h *CategoryHandlers) DeleteCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid category ID format")
	}

	if err := h.categories.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to delete category",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Category deleted successfully",
	})
}

// ToggleStatus flips the approval status between pending and approved
func (h *CategoryHandlers) ToggleStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid category ID format")
	}

	category, err := h.categories.ToggleStatus(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to update category status",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Status changed to " + category.Status,
	})
}

// ToggleFeatured flips the featured flag between 0 and 1
func (h *CategoryHandlers) ToggleFeatured(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid category ID format")
	}

	category, err := h.categories.ToggleFeatured(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to update category status",
		})
	}

	message := "Category is not featured anymore"
	if category.IsFeatured == 1 {
		message = "Category is featured now"
	}
	return c.JSON(http.StatusOK, map[string]string{"message": message})
}
