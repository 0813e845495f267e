package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/bnema/zoomlevels/internal/application/port"
	"github.com/bnema/zoomlevels/internal/domain/entity"
)

var keyDescriptions = map[string]string{
	"zoom.levels":                   "Permitted image-space zoom levels; empty disables snapping",
	"zoom.profile":                  "Stored level profile used instead of zoom.levels",
	"viewport.container_width":      "Simulated container width in pixels",
	"viewport.container_height":     "Simulated container height in pixels",
	"viewport.image_width":          "Simulated image width in pixels",
	"viewport.image_height":         "Simulated image height in pixels",
	"viewport.animation_time_ms":    "Zoom animation duration in milliseconds",
	"viewport.spring_stiffness":     "Ease-out stiffness of the zoom spring; 0 is linear",
	"viewport.min_zoom_image_ratio": "Minimum zoom as a fraction of the home zoom",
	"viewport.max_zoom_pixel_ratio": "Maximum image pixels per screen pixel",
	"viewport.min_zoom_level":       "Fixed minimum viewport zoom; 0 derives it",
	"viewport.max_zoom_level":       "Fixed maximum viewport zoom; 0 derives it",
	"logging.level":                 "Log verbosity level",
	"logging.format":                "Log output format",
	"logging.file":                  "Rotated JSON log file; empty disables file logging",
	"logging.max_size_mb":           "Log file size before rotation",
	"logging.max_backups":           "Rotated log files to keep",
	"logging.max_age_days":          "Days to keep rotated log files",
	"database.path":                 "Profile database file; empty uses the XDG data directory",
	"profiles.cache_size":           "Profiles kept in the in-memory cache",
}

// SchemaProvider implements port.ConfigSchemaProvider by reflecting over Config.
type SchemaProvider struct{}

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)

// NewSchemaProvider creates a new schema provider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns every configuration key in declaration order.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := reflect.ValueOf(DefaultConfig()).Elem()
	root := defaults.Type()

	var keys []entity.ConfigKeyInfo
	for i := range root.NumField() {
		sectionField := root.Field(i)
		section := tagName(sectionField)
		sectionValue := defaults.Field(i)

		for j := range sectionField.Type.NumField() {
			field := sectionField.Type.Field(j)
			key := section + "." + tagName(field)
			values, valueRange := constraints(field.Tag.Get("validate"))

			keys = append(keys, entity.ConfigKeyInfo{
				Key:         key,
				Type:        field.Type.String(),
				Default:     fmt.Sprint(sectionValue.Field(j).Interface()),
				Description: keyDescriptions[key],
				Values:      values,
				Range:       valueRange,
				Section:     strings.ToUpper(section[:1]) + section[1:],
			})
		}
	}
	return keys
}

func tagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
	return name
}

// constraints derives enum values and a numeric range from validate tags.
func constraints(tag string) (values []string, valueRange string) {
	var lower, upper string
	for _, rule := range strings.Split(tag, ",") {
		name, param, _ := strings.Cut(rule, "=")
		switch name {
		case "oneof":
			values = strings.Fields(param)
		case "gt":
			lower = ">" + param
		case "gte":
			lower = param
		case "lte":
			upper = param
		}
	}

	switch {
	case lower != "" && upper != "":
		valueRange = lower + "-" + upper
	case strings.HasPrefix(lower, ">"):
		valueRange = lower
	case lower != "":
		valueRange = ">=" + lower
	}
	return values, valueRange
}
