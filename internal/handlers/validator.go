package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FormValidator plugs go-playground/validator into Echo for the
// multipart form structs.
type FormValidator struct {
	validate *validator.Validate
}

func NewFormValidator() *FormValidator {
	return &FormValidator{validate: validator.New()}
}

func (v *FormValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Field-level messages matching the admin UI wording.
var formMessages = map[string]struct {
	Field   string
	Message string
}{
	"CategoryName":    {"category_name", "Please provide a category name."},
	"SubCategoryName": {"sub_category_name", "Please provide a sub-category name."},
	"CategoryID":      {"category_id", "Please select a category."},
}

// formErrors flattens validator errors into a field-to-message map.
func formErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		if m, ok := formMessages[fe.StructField()]; ok {
			out[m.Field] = m.Message
		} else {
			out[fe.StructField()] = fe.Error()
		}
	}
	return out
}
