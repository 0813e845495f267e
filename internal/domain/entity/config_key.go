package entity

// ConfigKeyInfo documents one configuration key, as listed by `config keys`.
type ConfigKeyInfo struct {
	Key     string `json:"key"` // dotted path, e.g. "viewport.image_width"
	Section string `json:"section"`
	Type    string `json:"type"`
	Default string `json:"default"`

	Description string `json:"description"`

	// Values lists the accepted strings of an enum key.
	Values []string `json:"values,omitempty"`
	// Range is a numeric bound such as ">0" or "0-4096".
	Range string `json:"range,omitempty"`
}
