package models

// Named is implemented by anything that has a display name.
type Named interface {
	DisplayName() string
}

// Person is the named entity embedded by Patient and Doctor.
type Person struct {
	Name string `json:"name" yaml:"name" validate:"required"`
}

// DisplayName returns the person's name.
func (p Person) DisplayName() string { return p.Name }

func (p Person) String() string { return p.Name }
