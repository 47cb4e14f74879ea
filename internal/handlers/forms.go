package handlers

import (
	"errors"
	"net/http"

	"courseadmin/internal/repositories"
	"courseadmin/internal/services"

	"github.com/labstack/echo/v4"
)

// formUpload extracts the image part from a multipart form. A missing
// part yields (nil, nil, nil) so update flows can leave the stored
// image untouched; a part that cannot be opened is a transport failure.
func formUpload(c echo.Context, field string) (*services.Upload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, nil
		}
		return nil, nil, &services.UploadTransportError{Err: err}
	}

	src, err := fh.Open()
	if err != nil {
		return nil, nil, &services.UploadTransportError{Err: err}
	}

	upload := &services.Upload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Reader:   src,
	}
	return upload, func() { src.Close() }, nil
}

// writeFormError maps service errors from store/update flows onto the
// JSON surface: field messages for validation, a generic upload message
// for transport failures, 404 for unresolved records and a uniform
// failure message for everything else.
func writeFormError(c echo.Context, err error, notFound, fallback string) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"errors": map[string]string{verr.Field: verr.Message},
		})
	}
	var terr *services.UploadTransportError
	if errors.As(err, &terr) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Failed to upload attachment.",
		})
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, notFound)
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": fallback})
}
