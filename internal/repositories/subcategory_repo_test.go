package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"courseadmin/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SubCategoryRepoTestSuite struct {
	suite.Suite
	mock          pgxmock.PgxPoolIface
	repo          SubCategoryRepository
	subCategoryID uuid.UUID
	categoryID    uuid.UUID
	context       context.Context
}

func (suite *SubCategoryRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewSubCategoryRepo(mock)
	suite.subCategoryID = uuid.New()
	suite.categoryID = uuid.New()
	suite.context = context.Background()
}

func (suite *SubCategoryRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestSubCategoryRepoTestSuite(t *testing.T) {
	suite.Run(t, new(SubCategoryRepoTestSuite))
}

func subCategoryColumns() []string {
	return []string{"id", "category_id", "sub_category_name", "image", "status", "is_featured", "created_at", "updated_at"}
}

func subCategoryListColumns() []string {
	return append(subCategoryColumns(), "category_name")
}

func (suite *SubCategoryRepoTestSuite) TestCreate_Success() {
	image := "subcategory-thumbnail/abcDE12345-1700000000.png"
	subcategory := &models.SubCategory{
		ID:              uuid.New(),
		CategoryID:      suite.categoryID,
		SubCategoryName: "Logo design",
		Image:           &image,
		Status:          models.StatusPending,
		IsFeatured:      0,
	}

	suite.mock.ExpectExec(`
		INSERT INTO sub_categories \(id, category_id, sub_category_name, image, status, is_featured, created_at, updated_at\)
		VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, NOW\(\), NOW\(\)\)
	`).WithArgs(subcategory.ID, subcategory.CategoryID, subcategory.SubCategoryName,
		subcategory.Image, subcategory.Status, subcategory.IsFeatured).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, subcategory)
	assert.NoError(suite.T(), err)
}

func (suite *SubCategoryRepoTestSuite) TestCreate_ForeignKeyViolation() {
	image := "subcategory-thumbnail/abcDE12345-1700000000.png"
	subcategory := &models.SubCategory{
		ID:              uuid.New(),
		CategoryID:      suite.categoryID,
		SubCategoryName: "Logo design",
		Image:           &image,
		Status:          models.StatusPending,
	}

	suite.mock.ExpectExec(`INSERT INTO sub_categories`).
		WithArgs(subcategory.ID, subcategory.CategoryID, subcategory.SubCategoryName,
			subcategory.Image, subcategory.Status, subcategory.IsFeatured).
		WillReturnError(errors.New("violates foreign key constraint"))

	err := suite.repo.Create(suite.context, subcategory)
	assert.Error(suite.T(), err)
}

func (suite *SubCategoryRepoTestSuite) TestGetByID_Success() {
	image := "subcategory-thumbnail/abcDE12345-1700000000.png"
	now := time.Now()

	suite.mock.ExpectQuery(`
		SELECT id, category_id, sub_category_name, image, status, is_featured, created_at, updated_at
		FROM sub_categories
		WHERE id = \$1
	`).WithArgs(suite.subCategoryID).
		WillReturnRows(pgxmock.NewRows(subCategoryColumns()).
			AddRow(suite.subCategoryID, suite.categoryID, "Logo design", &image,
				models.StatusPending, 0, now, now))

	result, err := suite.repo.GetByID(suite.context, suite.subCategoryID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.subCategoryID, result.ID)
	assert.Equal(suite.T(), suite.categoryID, result.CategoryID)
	assert.Equal(suite.T(), "Logo design", result.SubCategoryName)
}

func (suite *SubCategoryRepoTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery(`FROM sub_categories`).
		WithArgs(suite.subCategoryID).
		WillReturnError(pgx.ErrNoRows)

	result, err := suite.repo.GetByID(suite.context, suite.subCategoryID)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
	assert.Nil(suite.T(), result)
}

func (suite *SubCategoryRepoTestSuite) TestUpdate_Success() {
	image := "subcategory-thumbnail/abcDE12345-1700000000.jpg"
	subcategory := &models.SubCategory{
		ID:              suite.subCategoryID,
		CategoryID:      suite.categoryID,
		SubCategoryName: "Brand identity",
		Image:           &image,
	}

	suite.mock.ExpectExec(`
		UPDATE sub_categories
		SET category_id = \$1, sub_category_name = \$2, image = \$3, updated_at = NOW\(\)
		WHERE id = \$4
	`).WithArgs(subcategory.CategoryID, subcategory.SubCategoryName, subcategory.Image, subcategory.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.Update(suite.context, subcategory)
	assert.NoError(suite.T(), err)
}

func (suite *SubCategoryRepoTestSuite) TestUpdateStatus() {
	suite.mock.ExpectExec(`UPDATE sub_categories SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs(models.StatusPending, suite.subCategoryID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.UpdateStatus(suite.context, suite.subCategoryID, models.StatusPending)
	assert.NoError(suite.T(), err)
}

func (suite *SubCategoryRepoTestSuite) TestUpdateFeatured() {
	suite.mock.ExpectExec(`UPDATE sub_categories SET is_featured = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs(0, suite.subCategoryID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.UpdateFeatured(suite.context, suite.subCategoryID, 0)
	assert.NoError(suite.T(), err)
}

func (suite *SubCategoryRepoTestSuite) TestDelete_Success() {
	suite.mock.ExpectExec(`DELETE FROM sub_categories WHERE id = \$1`).
		WithArgs(suite.subCategoryID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := suite.repo.Delete(suite.context, suite.subCategoryID)
	assert.NoError(suite.T(), err)
}

func (suite *SubCategoryRepoTestSuite) TestList_NoFiltersJoinsParentName() {
	now := time.Now()
	image := "subcategory-thumbnail/abcDE12345-1700000000.png"
	rows := pgxmock.NewRows(subCategoryListColumns()).
		AddRow(uuid.New(), suite.categoryID, "Logo design", &image, models.StatusPending, 0, now, now, "Design")

	suite.mock.ExpectQuery(`
		SELECT sc.id, sc.category_id, sc.sub_category_name, sc.image, sc.status, sc.is_featured,
		       sc.created_at, sc.updated_at, c.category_name
		FROM sub_categories sc
		JOIN categories c ON c.id = sc.category_id$
	`).WillReturnRows(rows)

	result, err := suite.repo.List(suite.context, models.ListFilter{})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 1)
	assert.Equal(suite.T(), "Logo design", result[0].SubCategoryName)
	assert.Equal(suite.T(), "Design", result[0].CategoryName)
}

func (suite *SubCategoryRepoTestSuite) TestList_AllFiltersNumberedInOrder() {
	status := models.StatusPending
	featured := 0
	search := "logo"

	rows := pgxmock.NewRows(subCategoryListColumns())
	suite.mock.ExpectQuery(`
		WHERE sc.status = \$1 AND sc.is_featured = \$2 AND sc.sub_category_name ILIKE \$3
	`).WithArgs(status, featured, "%logo%").
		WillReturnRows(rows)

	_, err := suite.repo.List(suite.context, models.ListFilter{
		Status:     &status,
		IsFeatured: &featured,
		SearchText: &search,
	})
	assert.NoError(suite.T(), err)
}

func (suite *SubCategoryRepoTestSuite) TestList_FeaturedOnlyTakesFirstPlaceholder() {
	featured := 1

	rows := pgxmock.NewRows(subCategoryListColumns())
	suite.mock.ExpectQuery(`WHERE sc.is_featured = \$1`).
		WithArgs(featured).
		WillReturnRows(rows)

	_, err := suite.repo.List(suite.context, models.ListFilter{IsFeatured: &featured})
	assert.NoError(suite.T(), err)
}

func (suite *SubCategoryRepoTestSuite) TestList_SortLatest() {
	rows := pgxmock.NewRows(subCategoryListColumns())
	suite.mock.ExpectQuery(`ORDER BY sc.created_at DESC`).
		WillReturnRows(rows)

	_, err := suite.repo.List(suite.context, models.ListFilter{SortBy: models.SortLatest})
	assert.NoError(suite.T(), err)
}

func (suite *SubCategoryRepoTestSuite) TestList_SortZAOrdersByID() {
	rows := pgxmock.NewRows(subCategoryListColumns())
	suite.mock.ExpectQuery(`ORDER BY sc.id DESC`).
		WillReturnRows(rows)

	_, err := suite.repo.List(suite.context, models.ListFilter{SortBy: models.SortZA})
	assert.NoError(suite.T(), err)
}

func (suite *SubCategoryRepoTestSuite) TestList_UnknownSortOmitsOrderBy() {
	rows := pgxmock.NewRows(subCategoryListColumns())
	suite.mock.ExpectQuery(`JOIN categories c ON c.id = sc.category_id$`).
		WillReturnRows(rows)

	_, err := suite.repo.List(suite.context, models.ListFilter{SortBy: "unknown"})
	assert.NoError(suite.T(), err)
}

func (suite *SubCategoryRepoTestSuite) TestList_QueryError() {
	suite.mock.ExpectQuery(`FROM sub_categories sc`).
		WillReturnError(errors.New("relation does not exist"))

	result, err := suite.repo.List(suite.context, models.ListFilter{})
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), result)
}
