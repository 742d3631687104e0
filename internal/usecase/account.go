package usecase

import (
	"regexp"

	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/go-playground/validator/v10"
	"github.com/jimlawless/whereami"
)

const accountIDTag = "account_id"

// Идентификатор аккаунта становится сегментом пути во временной директории,
// поэтому допускаются только буквы, цифры, '-', '_' и '.' не в начале.
var accountIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,63}$`)

var accountValidate = newAccountValidator()

func newAccountValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation(accountIDTag, func(fl validator.FieldLevel) bool {
		return accountIDPattern.MatchString(fl.Field().String())
	})

	return v
}

func validateAccountID(accountID string) error {
	if err := accountValidate.Var(accountID, "required,"+accountIDTag); err != nil {
		return e.Wrap(whereami.WhereAmI(), e.NewDetailedError(e.ErrInvalidAccountID, map[string]any{
			"accountId": accountID,
		}))
	}

	return nil
}
