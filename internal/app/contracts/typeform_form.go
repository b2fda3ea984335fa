package contracts

import (
	"context"
	"typeform-connector/internal/pkg/typeform_dto"
)

type FormTypeformClient interface {
	FindFormByID(ctx context.Context, formID string) (*typeform_dto.Form, error)
}
