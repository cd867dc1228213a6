package entities

// Category is one row of the marker style encoding table.
type Category struct {
	Label  string  `json:"label" mapstructure:"label"`
	Radius float64 `json:"radius" mapstructure:"radius"`
	Color  string  `json:"color" mapstructure:"color"`
}
