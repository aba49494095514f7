package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	cfgpkg "github.com/KaramelBytes/inflammation-cli/internal/config"
	"github.com/KaramelBytes/inflammation-cli/internal/models"
	"github.com/KaramelBytes/inflammation-cli/internal/parser"
	"github.com/KaramelBytes/inflammation-cli/internal/serializers"
	"github.com/KaramelBytes/inflammation-cli/internal/views"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Analysis flags
	flagView    string
	flagPatient int
	flagSave    bool
	flagOutput  string

	// Loaded configuration
	cfg *cfgpkg.Global
)

const (
	viewVisualize = "visualize"
	viewRecord    = "record"
)

var rootCmd = &cobra.Command{
	Use:   "inflammation <infiles...>",
	Short: "A basic patient inflammation data management system",
	Long: `inflammation reads CSV/TSV/XLSX tables of inflammation readings (one row per patient,
one column per day) and either summarises them per day ("visualize") or prints the record of
a single patient ("record"), optionally saving that record as JSON or YAML.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAnalysis,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.inflammation/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	f := rootCmd.Flags()
	f.StringVar(&flagView, "view", viewVisualize, `"visualize" summarises each day, "record" prints the patient selected by --patient`)
	f.IntVar(&flagPatient, "patient", 0, "row index of the patient record to display (used with --view record)")
	f.BoolVar(&flagSave, "save", false, "save the patient record selected by --patient")
	f.StringVarP(&flagOutput, "output", "o", "", "file to save the patient record to (.json, .yaml or .yml)")
	f.StringVar(&flagOutput, "filename", "", "alias for --output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults
		log.WithError(err).Warn("failed to load config")
	} else {
		cfg = c
	}
	ec := effectiveConfig()
	if lvl, err := log.ParseLevel(ec.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if debug {
		log.SetLevel(log.DebugLevel)
	}
}

// effectiveConfig returns the loaded config, or defaults when loading failed.
func effectiveConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return &cfgpkg.Global{
		DefaultView: viewVisualize,
		PatientName: "UNKNOWN",
		OutputDir:   ".",
		LogLevel:    "warn",
		Decimals:    2,
		Sparkline:   true,
	}
}

func viewOptions(c *cfgpkg.Global) views.Options {
	return views.Options{Decimals: c.Decimals, Sparkline: c.Sparkline}
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	c := effectiveConfig()
	view := flagView
	if !cmd.Flags().Changed("view") {
		view = c.DefaultView
	}
	if view != viewVisualize && view != viewRecord {
		return fmt.Errorf("invalid --view: %s (use %s or %s)", view, viewVisualize, viewRecord)
	}
	if flagSave && view != viewRecord {
		log.Warn("--save only applies to --view record; ignoring")
	}
	out := cmd.OutOrStdout()
	opt := viewOptions(c)

	for _, path := range args {
		t, err := parser.LoadTable(path, parser.Options{Sheet: c.XLSXSheet})
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"path": path, "view": view}).Debug("rendering view")

		switch view {
		case viewVisualize:
			vd, err := views.NewViewData(t)
			if err != nil {
				return err
			}
			if err := views.Visualize(out, filepath.Base(path), vd, opt); err != nil {
				return err
			}
		case viewRecord:
			p, err := models.PatientAt(t, flagPatient, c.PatientName)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := views.DisplayPatientRecord(out, p, opt); err != nil {
				return err
			}
			if !flagSave {
				continue
			}
			target := flagOutput
			if target == "" {
				target = filepath.Join(c.OutputDir, fmt.Sprintf("patient-%d-%s.json", flagPatient, uuid.NewString()[:8]))
			}
			if err := serializers.ForPath(target).Save([]*models.Patient{p}, target); err != nil {
				return fmt.Errorf("save patient: %w", err)
			}
			log.WithFields(log.Fields{"patient": flagPatient, "path": target}).Debug("saved patient record")
			fmt.Fprintf(out, "patient %d data saved to file %s\n", flagPatient, target)
		}
	}
	return nil
}
