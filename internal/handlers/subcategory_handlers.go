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

// SubCategoryHandlers handles subcategory-related HTTP requests. The
// category service is needed to hand the form fragments their parent
// category choices.
type SubCategoryHandlers struct {
	subcategories services.SubCategoryService
	categories    services.CategoryService
}

func NewSubCategoryHandlers(subcategories services.SubCategoryService, categories services.CategoryService) *SubCategoryHandlers {
	return &SubCategoryHandlers{
		subcategories: subcategories,
		categories:    categories,
	}
}

// SubCategoryForm represents the multipart store/update payload.
type SubCategoryForm struct {
	SubCategoryName string `form:"sub_category_name" validate:"required"`
	CategoryID      string `form:"category_id" validate:"required"`
}

// ListSubCategories handles getting the filtered, sorted subcategory listing
func (h *SubCategoryHandlers) ListSubCategories(c echo.Context) error {
	var req ListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	subcategories, err := h.subcategories.List(c.Request().Context(), req.filter())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list subcategories")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"subcategories": subcategories,
	})
}

// CreateForm returns the form fragment data with the selectable parent categories
func (h *SubCategoryHandlers) CreateForm(c echo.Context) error {
	categories, err := h.categories.List(c.Request().Context(), models.ListFilter{})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list categories")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"form":       "sub-category-form",
		"categories": categories,
	})
}

// EditForm returns the edit-form fragment data with the current record
// and the selectable parent categories
func (h *SubCategoryHandlers) EditForm(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid subcategory ID format")
	}

	subcategory, err := h.subcategories.GetByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Sub-category not found")
	}

	categories, err := h.categories.List(c.Request().Context(), models.ListFilter{})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list categories")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"form":        "sub-category-form",
		"subcategory": subcategory,
		"categories":  categories,
	})
}

// StoreSubCategory handles creating a new subcategory with its thumbnail
func (h *SubCategoryHandlers) StoreSubCategory(c echo.Context) error {
	var form SubCategoryForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&form); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{"errors": formErrors(err)})
	}

	categoryID, err := uuid.Parse(form.CategoryID)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"errors": map[string]string{"category_id": "Please select a category."},
		})
	}

	upload, closeUpload, err := formUpload(c, "image")
	if err != nil {
		return writeFormError(c, err, "Sub-category not found", "Failed to save sub-category.")
	}
	if closeUpload != nil {
		defer closeUpload()
	}

	subcategory, err := h.subcategories.Create(c.Request().Context(), categoryID, form.SubCategoryName, upload)
	if err != nil {
		return writeFormError(c, err, "Sub-category not found", "Failed to save sub-category.")
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":     "Sub-category added successfully!",
		"subcategory": subcategory,
	})
}

// UpdateSubCategory handles updating a subcategory; the image is optional
func (h *SubCategoryHandlers) UpdateSubCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid subcategory ID format")
	}

	var form SubCategoryForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&form); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{"errors": formErrors(err)})
	}

	categoryID, err := uuid.Parse(form.CategoryID)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"errors": map[string]string{"category_id": "Please select a category."},
		})
	}

	upload, closeUpload, err := formUpload(c, "image")
	if err != nil {
		return writeFormError(c, err, "Sub-category not found", "Failed to save sub-category.")
	}
	if closeUpload != nil {
		defer closeUpload()
	}

	subcategory, err := h.subcategories.Update(c.Request().Context(), id, categoryID, form.SubCategoryName, upload)
	if err != nil {
		return writeFormError(c, err, "Sub-category not found", "Failed to save sub-category.")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "Sub-category updated successfully!",
		"subcategory": subcategory,
	})
}

// DeleteSubCategory handles deleting a subcategory and its thumbnail blob
func (h *SubCategoryHandlers) DeleteSubCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid subcategory ID format")
	}

	if err := h.subcategories.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Sub-category not found")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to delete Sub-category",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Sub-category deleted successfully",
	})
}

// ToggleStatus flips the approval status between pending and approved
func (h *SubCategoryHandlers) ToggleStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid subcategory ID format")
	}

	subcategory, err := h.subcategories.ToggleStatus(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Sub-category not found")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to update subcategory status",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Status changed to " + subcategory.Status,
	})
}

// ToggleFeatured flips the featured flag between 0 and 1
func (h *SubCategoryHandlers) ToggleFeatured(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid subcategory ID format")
	}

	subcategory, err := h.subcategories.ToggleFeatured(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Sub-category not found")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to update subcategory status",
		})
	}

	message := "subcategory is not featured anymore"
	if subcategory.IsFeatured == 1 {
		message = "subcategory is featured now"
	}
	return c.JSON(http.StatusOK, map[string]string{"message": message})
}
