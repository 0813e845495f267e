package port

import "github.com/bnema/zoomlevels/internal/domain/entity"

// ConfigSchemaProvider lists the configuration keys in declaration order.
type ConfigSchemaProvider interface {
	GetSchema() []entity.ConfigKeyInfo
}
