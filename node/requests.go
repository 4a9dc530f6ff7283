package node

import (
	"fmt"

	"chat-ledger/domain"
	"chat-ledger/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// CreateSessionRequest opens a session and carries its first message, the
// way the original protocol bundles the two.
type CreateSessionRequest struct {
	Subject      string         `validate:"required"`
	Receivers    []domain.Party `validate:"required,min=1"`
	FirstMessage string         `validate:"required"`
}

func (r CreateSessionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	return nil
}

type SendMessageRequest struct {
	SessionID uuid.UUID `validate:"required"`
	Content   string    `validate:"required"`
}

func (r SendMessageRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	return nil
}
