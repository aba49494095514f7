package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/inflammation-cli/internal/models"
	"github.com/KaramelBytes/inflammation-cli/internal/parser"
	"github.com/KaramelBytes/inflammation-cli/internal/serializers"
	"github.com/KaramelBytes/inflammation-cli/internal/views"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var doctorName string

var doctorCmd = &cobra.Command{
	Use:   "doctor <files...>",
	Short: "Average observations per day across a doctor's patients",
	Long: `doctor loads patients from saved records (.json, .yaml, .yml) or from inflammation
tables (one patient per row), assigns them all to one doctor and prints the mean value
recorded on each day, in the order days are first seen.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		d := models.NewDoctor(doctorName)
		for _, path := range args {
			patients, err := loadPatients(path, c.XLSXSheet)
			if err != nil {
				return err
			}
			for _, p := range patients {
				d.AddPatient(p)
			}
			log.WithFields(log.Fields{"path": path, "patients": len(patients)}).Debug("attached patients")
		}
		avg := d.AverageObservationsOverPatients()
		title := fmt.Sprintf("%s: AVERAGE OVER %d PATIENTS", d, len(d.Patients))
		return views.DisplayObservations(cmd.OutOrStdout(), title, avg, viewOptions(c))
	},
}

func loadPatients(path, sheet string) ([]*models.Patient, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return serializers.ForPath(path).Load(path)
	}
	t, err := parser.LoadTable(path, parser.Options{Sheet: sheet})
	if err != nil {
		return nil, err
	}
	base := filepath.Base(path)
	patients := make([]*models.Patient, len(t))
	for i, row := range t {
		patients[i] = models.PatientFromRow(fmt.Sprintf("%s#%d", base, i), row)
	}
	return patients, nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().StringVar(&doctorName, "name", "Doctor", "doctor name used in the report title")
}
