package auth

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// namePattern restricts display names to word characters, hyphen,
// period, and whitespace.
var namePattern = regexp.MustCompile(`^[\w\-\.\s]+$`)

// JoinRequest carries the home-form inputs. Code stays optional here:
// a create request has no code yet.
type JoinRequest struct {
	Name string
	Code string
}

// ValidateJoin rejects invalid form input before any room state is
// touched. Name uniqueness inside the room is the registry's business,
// not validation.
func ValidateJoin(req JoinRequest) error {
	if err := ValidateName(req.Name); err != nil {
		return err
	}
	return ValidateCode(req.Code)
}

// ValidateName checks a display name on its own, so callers can tell a
// bad name apart from a bad code.
func ValidateName(name string) error {
	if err := validate.Var(name, "required,min=1,max=30"); err != nil {
		return err
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("name contains invalid characters")
	}
	return nil
}

// ValidateCode checks a room code's shape. Empty is allowed: a create
// request has no code, and joins reject the empty case separately.
func ValidateCode(code string) error {
	return validate.Var(code, "omitempty,len=6,uppercase,alpha")
}
