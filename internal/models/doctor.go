package models

// Doctor is a person responsible for a list of patients. The same patient
// may be added more than once or belong to several doctors.
type Doctor struct {
	Person
	Patients []*Patient
}

// NewDoctor creates a doctor without patients.
func NewDoctor(name string) *Doctor {
	return &Doctor{Person: Person{Name: name}}
}

// AddPatient appends p to the doctor's patients.
func (d *Doctor) AddPatient(p *Patient) {
	d.Patients = append(d.Patients, p)
}

// AverageObservationsOverPatients returns one observation per distinct day
// holding the mean value recorded on that day across all patients.
// Days appear in the order they are first seen, scanning patients and then
// their observations in list order.
func (d *Doctor) AverageObservationsOverPatients() []Observation {
	type acc struct {
		sum float64
		n   int
	}
	var days []int
	byDay := make(map[int]*acc)
	for _, p := range d.Patients {
		if p == nil {
			continue
		}
		for _, o := range p.Observations {
			a, ok := byDay[o.Day]
			if !ok {
				a = &acc{}
				byDay[o.Day] = a
				days = append(days, o.Day)
			}
			a.sum += o.Value
			a.n++
		}
	}
	out := make([]Observation, 0, len(days))
	for _, day := range days {
		a := byDay[day]
		out = append(out, Observation{Day: day, Value: a.sum / float64(a.n)})
	}
	return out
}
