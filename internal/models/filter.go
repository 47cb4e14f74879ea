package models

// Sort modes accepted by the list endpoints. Anything else leaves the
// result in the repository's natural order.
const (
	SortLatest = "latest"
	SortAZ     = "a-z"
	SortZA     = "z-a"
)

// ListFilter carries the optional filter/sort parameters of a listing
// request. Nil pointers impose no constraint on their dimension; every
// supplied filter is combined with AND.
type ListFilter struct {
	Status     *string
	IsFeatured *int
	SearchText *string
	SortBy     string
}
