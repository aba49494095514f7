// Package serializers persists patient records as JSON or YAML documents of
// the form [{"name": "...", "observations": [{"day": 0, "value": 1}]}].
package serializers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/KaramelBytes/inflammation-cli/internal/models"
	"github.com/KaramelBytes/inflammation-cli/internal/utils"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Serializer saves and loads lists of patients.
type Serializer interface {
	Save(patients []*models.Patient, path string) error
	Load(path string) ([]*models.Patient, error)
}

// PatientJSONSerializer stores patients as an indented JSON array.
type PatientJSONSerializer struct{}

// PatientYAMLSerializer stores patients as a YAML sequence.
type PatientYAMLSerializer struct{}

// ForPath picks the YAML serializer for .yaml/.yml paths and JSON otherwise.
func ForPath(path string) Serializer {
	name := strings.ToLower(path)
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return PatientYAMLSerializer{}
	}
	return PatientJSONSerializer{}
}

var validate = validator.New()

// Save writes patients to path using an atomic write.
func (PatientJSONSerializer) Save(patients []*models.Patient, path string) error {
	data, err := utils.PrettyJSON(nonNil(patients))
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(path, data)
}

// Load reads and validates the patients stored at path.
func (PatientJSONSerializer) Load(path string) ([]*models.Patient, error) {
	b, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	var patients []*models.Patient
	if err := json.Unmarshal(b, &patients); err != nil {
		return nil, fmt.Errorf("parse patients: %w", err)
	}
	return checked(patients)
}

// Save writes patients to path using an atomic write.
func (PatientYAMLSerializer) Save(patients []*models.Patient, path string) error {
	data, err := yaml.Marshal(nonNil(patients))
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return utils.SafeWriteFile(path, data)
}

// Load reads and validates the patients stored at path.
func (PatientYAMLSerializer) Load(path string) ([]*models.Patient, error) {
	b, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	var patients []*models.Patient
	if err := yaml.Unmarshal(b, &patients); err != nil {
		return nil, fmt.Errorf("parse patients: %w", err)
	}
	return checked(patients)
}

func readRecords(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("patient records not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read patients: %w", err)
	}
	return b, nil
}

func checked(patients []*models.Patient) ([]*models.Patient, error) {
	for i, p := range patients {
		if p == nil {
			return nil, fmt.Errorf("%w: patient %d is null", models.ErrValue, i)
		}
		if p.Observations == nil {
			p.Observations = []models.Observation{}
		}
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("%w: patient %d: %v", models.ErrValue, i, err)
		}
	}
	if patients == nil {
		patients = []*models.Patient{}
	}
	return patients, nil
}

func nonNil(patients []*models.Patient) []*models.Patient {
	if patients == nil {
		return []*models.Patient{}
	}
	return patients
}
