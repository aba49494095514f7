package models

import "fmt"

// Patient is a person with an ordered list of observations.
type Patient struct {
	Person       `yaml:",inline"`
	Observations []Observation `json:"observations" yaml:"observations" validate:"dive"`
}

// NewPatient creates a patient. The initial observations are copied.
func NewPatient(name string, obs ...Observation) *Patient {
	return &Patient{
		Person:       Person{Name: name},
		Observations: append([]Observation{}, obs...),
	}
}

// PatientFromRow builds a patient whose i-th observation is row[i] on day i.
func PatientFromRow(name string, row []float64) *Patient {
	p := NewPatient(name)
	for day, v := range row {
		p.AddObservationOn(day, v)
	}
	return p
}

// AddObservation appends a reading on the day after the last appended
// observation, or day 0 for a patient without observations.
func (p *Patient) AddObservation(value float64) Observation {
	day := 0
	if n := len(p.Observations); n > 0 {
		day = p.Observations[n-1].Day + 1
	}
	return p.AddObservationOn(day, value)
}

// AddObservationOn appends a reading for an explicit day.
func (p *Patient) AddObservationOn(day int, value float64) Observation {
	o := Observation{Day: day, Value: value}
	p.Observations = append(p.Observations, o)
	return o
}

// LastObservation returns the most recently appended observation.
func (p *Patient) LastObservation() (Observation, error) {
	if len(p.Observations) == 0 {
		return Observation{}, fmt.Errorf("patient %q has no observations: %w", p.Name, ErrEmpty)
	}
	return p.Observations[len(p.Observations)-1], nil
}

// Equal reports whether both patients have the same name and the same
// observations in the same order. Nil patients are only equal to each other.
func (p *Patient) Equal(other *Patient) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.Name != other.Name || len(p.Observations) != len(other.Observations) {
		return false
	}
	for i, o := range p.Observations {
		if !o.Equal(other.Observations[i]) {
			return false
		}
	}
	return true
}

// PatientAt builds the patient for row idx of t, named name.
func PatientAt(t Table, idx int, name string) (*Patient, error) {
	if idx < 0 || idx >= len(t) {
		return nil, fmt.Errorf("%w: patient %d (table has %d patients)", ErrIndex, idx, len(t))
	}
	return PatientFromRow(name, t[idx]), nil
}
