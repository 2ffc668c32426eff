// Package background manages the page background and side decoration
// images through two style properties.
package background

const (
	PropBackground = "--bg-image"
	PropSides      = "--sides-image"

	None = "none"
)

// Style is an in-memory set of custom style properties. Unset properties
// read as None.
type Style struct {
	props map[string]string
}

func NewStyle() *Style {
	return &Style{props: map[string]string{
		PropBackground: None,
		PropSides:      None,
	}}
}

func (s *Style) Property(name string) string {
	if v, ok := s.props[name]; ok && v != "" {
		return v
	}
	return None
}

func (s *Style) SetProperty(name, value string) {
	if value == "" {
		value = None
	}
	s.props[name] = value
}
