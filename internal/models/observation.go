package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// Observation is a single reading taken on a given day.
type Observation struct {
	Day   int     `json:"day" yaml:"day" validate:"gte=0"`
	Value float64 `json:"value" yaml:"value"`
}

// Equal reports whether both observations have the same day and value.
func (o Observation) Equal(other Observation) bool {
	return o.Day == other.Day && o.Value == other.Value
}

func (o Observation) String() string {
	return strconv.FormatFloat(o.Value, 'g', -1, 64)
}

type observationJSON struct {
	Day   int      `json:"day"`
	Value *float64 `json:"value"`
}

// MarshalJSON writes NaN and infinite readings as null, which JSON can carry.
func (o Observation) MarshalJSON() ([]byte, error) {
	out := observationJSON{Day: o.Day}
	if !math.IsNaN(o.Value) && !math.IsInf(o.Value, 0) {
		v := o.Value
		out.Value = &v
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads a null value back as NaN.
func (o *Observation) UnmarshalJSON(b []byte) error {
	var in observationJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	o.Day = in.Day
	o.Value = math.NaN()
	if in.Value != nil {
		o.Value = *in.Value
	}
	return nil
}
