package config

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	caseflowerrors "github.com/caseflow/caseflow/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	caseIDPattern   = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	stepKindPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("case_id", func(fl validator.FieldLevel) bool {
			return caseIDPattern.MatchString(fl.Field().String())
		})

		// Step kinds are an open set; only the shape is constrained here.
		// Unknown kinds surface at execution time as failed handler lookups.
		_ = v.RegisterValidation("step_kind", func(fl validator.FieldLevel) bool {
			return stepKindPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateSuite performs schema and cross-field validation on a suite document.
func ValidateSuite(suite *Suite) error {
	if suite == nil {
		return caseflowerrors.NewValidationError("suite", "suite is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(suite); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			msg := fmt.Sprintf("failed on %q rule", first.Tag())
			return caseflowerrors.NewValidationError(first.Namespace(), msg, err)
		}
		return caseflowerrors.NewValidationError("suite", err.Error(), err)
	}

	seen := make(map[string]struct{}, len(suite.Cases))
	for _, c := range suite.Cases {
		if _, dup := seen[c.ID]; dup {
			return caseflowerrors.NewValidationError(
				fmt.Sprintf("cases[%s]", c.ID), "duplicate case id", nil)
		}
		seen[c.ID] = struct{}{}
	}

	return nil
}
