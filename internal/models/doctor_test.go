package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDoctor(t *testing.T) {
	d := NewDoctor("Dr. Alice")
	assert.Equal(t, "Dr. Alice", d.Name)
	var n Named = d
	assert.Equal(t, "Dr. Alice", n.DisplayName())
}

func TestAddPatientsToDoctor(t *testing.T) {
	d := NewDoctor("Dr. House")
	p := NewPatient("Alice")
	d.AddPatient(p)
	require.Len(t, d.Patients, 1)
	assert.Equal(t, p.Name, d.Patients[0].Name)
	assert.Equal(t, p.Observations, d.Patients[0].Observations)
}

func TestAverageObservationsOverPatients(t *testing.T) {
	d := NewDoctor("Dr. House")
	days := []int{0, 1, 2}
	values := []float64{5, 4, 3}
	for _, name := range []string{"alice", "bob", "sam"} {
		p := NewPatient(name)
		for i := range days {
			p.AddObservationOn(days[i], values[i])
		}
		d.AddPatient(p)
	}
	avg := d.AverageObservationsOverPatients()
	require.Len(t, avg, 3)
	for i, o := range avg {
		assert.Equal(t, days[i], o.Day)
		assert.Equal(t, values[i], o.Value)
	}
}

func TestAverageObservationsFirstSeenOrder(t *testing.T) {
	d := NewDoctor("Dr. House")
	a := NewPatient("alice")
	a.AddObservationOn(2, 4)
	a.AddObservationOn(0, 1)
	b := NewPatient("bob")
	b.AddObservationOn(1, 10)
	b.AddObservationOn(2, 8)
	d.AddPatient(a)
	d.AddPatient(b)

	avg := d.AverageObservationsOverPatients()
	assert.Equal(t, []Observation{{2, 6}, {0, 1}, {1, 10}}, avg)
}

func TestAverageObservationsNoPatients(t *testing.T) {
	avg := NewDoctor("Dr. House").AverageObservationsOverPatients()
	assert.NotNil(t, avg)
	assert.Empty(t, avg)
}

func TestDoctorAllowsDuplicatePatients(t *testing.T) {
	d := NewDoctor("Dr. House")
	p := NewPatient("alice")
	p.AddObservation(2)
	d.AddPatient(p)
	d.AddPatient(p)
	assert.Len(t, d.Patients, 2)
	assert.Equal(t, []Observation{{0, 2}}, d.AverageObservationsOverPatients())
}
