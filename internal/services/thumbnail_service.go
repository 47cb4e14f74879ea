package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"courseadmin/internal/storage"

	"github.com/labstack/gommon/random"
	"go.uber.org/zap"
)

// Buckets holding the thumbnail blobs, one per entity type.
const (
	CategoryThumbnailBucket    = "category-thumbnail"
	SubCategoryThumbnailBucket = "subcategory-thumbnail"
)

// MaxThumbnailBytes caps thumbnail uploads at 2 MiB.
const MaxThumbnailBytes = 2 * 1024 * 1024

const tokenLength = 10

var allowedThumbnailExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// Upload is an incoming multipart image exactly as the handler received
// it: client-declared filename, declared size and an open reader.
type Upload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// ThumbnailService runs the upload-and-replace workflow for one entity
// type's bucket: validate the file, name it, write it, and clean up the
// blob it supersedes. Returned keys are what the repository persists in
// the record's image column.
type ThumbnailService interface {
	// Store validates a required new upload and writes it under the
	// service's bucket with a fresh generated name.
	Store(ctx context.Context, upload *Upload) (string, error)

	// Replace supersedes oldKey with the uploaded file. The new key
	// reuses the old key's stem and takes the new file's extension;
	// when there was no prior image a fresh name is generated instead.
	// Nothing is deleted or written until the upload passes validation.
	Replace(ctx context.Context, oldKey *string, upload *Upload) (string, error)

	// Remove is best-effort cleanup of a blob whose record is already
	// gone. Failures are logged, never surfaced.
	Remove(ctx context.Context, key string)
}

type thumbnailService struct {
	bucket  string
	storage storage.ObjectStorage
	logger  *zap.Logger

	// overridable in tests
	now   func() time.Time
	token func(length uint8, charsets ...string) string
}

func NewThumbnailService(bucket string, store storage.ObjectStorage, logger *zap.Logger) ThumbnailService {
	return &thumbnailService{
		bucket:  bucket,
		storage: store,
		logger:  logger,
		now:     time.Now,
		token:   random.String,
	}
}

func (s *thumbnailService) Store(ctx context.Context, upload *Upload) (string, error) {
	if err := validateThumbnail(upload, true); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s-%d%s", s.token(tokenLength), s.now().Unix(), thumbnailExt(upload))
	key := s.bucket + "/" + name
	if err := s.storage.Save(ctx, key, upload.Reader, upload.Size); err != nil {
		return "", fmt.Errorf("failed to store thumbnail: %w", err)
	}
	return key, nil
}

func (s *thumbnailService) Replace(ctx context.Context, oldKey *string, upload *Upload) (string, error) {
	if err := validateThumbnail(upload, true); err != nil {
		return "", err
	}

	if oldKey == nil || *oldKey == "" {
		// No prior image, so there is no stem to carry over.
		return s.Store(ctx, upload)
	}

	if ok, err := s.storage.Exists(ctx, *oldKey); err == nil && ok {
		if err := s.storage.Delete(ctx, *oldKey); err != nil {
			s.logger.Warn("failed to delete superseded thumbnail",
				zap.String("key", *oldKey), zap.Error(err))
		}
	} else if err != nil {
		s.logger.Warn("failed to check superseded thumbnail",
			zap.String("key", *oldKey), zap.Error(err))
	}

	// The stem survives updates; only the extension tracks the new file.
	oldName := filepath.Base(*oldKey)
	stem := strings.TrimSuffix(oldName, filepath.Ext(oldName))
	key := s.bucket + "/" + stem + thumbnailExt(upload)
	if err := s.storage.Save(ctx, key, upload.Reader, upload.Size); err != nil {
		return "", fmt.Errorf("failed to store thumbnail: %w", err)
	}
	return key, nil
}

func (s *thumbnailService) Remove(ctx context.Context, key string) {
	if key == "" {
		return
	}
	ok, err := s.storage.Exists(ctx, key)
	if err != nil {
		s.logger.Warn("failed to check orphaned thumbnail", zap.String("key", key), zap.Error(err))
		return
	}
	if !ok {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to delete orphaned thumbnail", zap.String("key", key), zap.Error(err))
	}
}

func thumbnailExt(upload *Upload) string {
	return strings.ToLower(filepath.Ext(upload.Filename))
}

func validateThumbnail(upload *Upload, required bool) error {
	if upload == nil {
		if required {
			return &ValidationError{Field: "image", Message: "Please upload a thumbnail image."}
		}
		return nil
	}
	if !allowedThumbnailExts[thumbnailExt(upload)] {
		return &ValidationError{Field: "image", Message: "Invalid file format. Only jpg, jpeg, png, gif files are allowed."}
	}
	if upload.Size > MaxThumbnailBytes {
		return &ValidationError{Field: "image", Message: "The thumbnail must not be larger than 2MB."}
	}
	return nil
}
