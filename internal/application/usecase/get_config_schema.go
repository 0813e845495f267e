package usecase

import (
	"context"
	"strings"

	"github.com/bnema/zoomlevels/internal/application/port"
	"github.com/bnema/zoomlevels/internal/domain/entity"
)

// GetConfigSchemaUseCase lists configuration keys for `config keys`.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{provider: provider}
}

// GetConfigSchemaInput selects which keys to return.
type GetConfigSchemaInput struct {
	// Section is matched case-insensitively; empty means every section.
	Section string
}

// GetConfigSchemaOutput holds the selected keys.
type GetConfigSchemaOutput struct {
	Keys []entity.ConfigKeyInfo
}

// Execute returns the keys of the requested section, or all of them.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	keys := uc.provider.GetSchema()
	if input.Section == "" {
		return &GetConfigSchemaOutput{Keys: keys}, nil
	}

	var selected []entity.ConfigKeyInfo
	for _, key := range keys {
		if strings.EqualFold(key.Section, input.Section) {
			selected = append(selected, key)
		}
	}
	return &GetConfigSchemaOutput{Keys: selected}, nil
}
