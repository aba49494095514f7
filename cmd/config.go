package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KaramelBytes/inflammation-cli/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set inflammation configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "default_view: %s\n", c.DefaultView)
		fmt.Fprintf(out, "patient_name: %s\n", c.PatientName)
		fmt.Fprintf(out, "output_dir: %s\n", c.OutputDir)
		fmt.Fprintf(out, "log_level: %s\n", c.LogLevel)
		fmt.Fprintf(out, "decimals: %d\n", c.Decimals)
		fmt.Fprintf(out, "sparkline: %t\n", c.Sparkline)
		if c.XLSXSheet != "" {
			fmt.Fprintf(out, "xlsx_sheet: %s\n", c.XLSXSheet)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				// Unloadable file: rebuild from defaults, Save validates.
				log.WithError(err).Warn("existing config could not be loaded; starting from defaults")
				c = effectiveConfig()
			}
			cfg = c
		}
		switch key {
		case "default_view":
			cfg.DefaultView = val
		case "patient_name":
			cfg.PatientName = val
		case "output_dir":
			cfg.OutputDir = val
		case "log_level":
			cfg.LogLevel = val
		case "decimals":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for decimals: %w", err)
			}
			cfg.Decimals = i
		case "sparkline":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for sparkline: %w", err)
			}
			cfg.Sparkline = b
		case "xlsx_sheet":
			cfg.XLSXSheet = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
