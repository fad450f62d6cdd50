package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"chatter-hub/errors"
)

var validate = validator.New()

// Bounds mirror the wire contract: names carry at most 64 runes,
// message bodies at most 2048.
type CreateChatterRequest struct {
	Name string `validate:"required,max=64"`
}

type CreateGroupRequest struct {
	Name string `validate:"required,max=64"`
}

type SendMessageRequest struct {
	Body string `validate:"required,max=2048"`
}

func validateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	return nil
}
