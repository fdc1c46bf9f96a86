package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"proposal-eval-be/internal/pkg/apperrors"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and reports the first batch of
// failures as a single validation error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Wrap(apperrors.KindValidation, "invalid request", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag()))
	}

	return apperrors.New(apperrors.KindValidation, strings.Join(msgs, "; "))
}
