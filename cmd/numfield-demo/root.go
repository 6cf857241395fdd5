package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	numfield "github.com/shinyrainbow/thea5995property-sub000"
	"github.com/shinyrainbow/thea5995property-sub000/field"
)

const envPrefix = "NUMFIELD"

// newRootCmd builds the CLI. Configuration precedence, highest first:
//  1. flags (--price, --area, --bedrooms, --log-file, --log-level)
//  2. NUMFIELD_<SECTION>_<OPTION> environment variables
//  3. the config file: --config, then NUMFIELD_CONFIG_FILE, then .numfield.yaml
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "numfield-demo",
		Short: "Edit a property listing with grouped numeric fields",
		Long: `numfield-demo opens a small listing form with three numeric fields.
Digits are grouped with commas as you type and the caret keeps its place.

Keys:
  tab / shift+tab   next / previous field
  ctrl+r            reload the configured listing
  ctrl+l            clear every field
  enter             submit and print a summary
  ctrl+q / esc      quit`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return readConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), s)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .numfield.yaml, can also use NUMFIELD_CONFIG_FILE env var)")

	flags := cmd.Flags()
	flags.Float64("price", 0, "initial asking price")
	flags.Float64("area", 0, "initial floor area")
	flags.Float64("bedrooms", 0, "initial number of bedrooms")
	flags.String("log-file", "", "write debug logs to this file")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	for key, name := range map[string]string{
		keyPrice:    "price",
		keyArea:     "area",
		keyBedrooms: "bedrooms",
		keyLogFile:  "log-file",
		keyLogLevel: "log-level",
	} {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := numfield.ParseVersion(numfield.Version())
			if err != nil {
				return fmt.Errorf("embedded version: %w", err)
			}
			line := "v" + v.String()
			if v.Prerelease() {
				line += " (pre-release)"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}
}

func readConfig(v *viper.Viper, cfgFile string) error {
	explicit := true
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if envFile := os.Getenv(envPrefix + "_CONFIG_FILE"); envFile != "" {
		v.SetConfigFile(envFile)
	} else {
		explicit = false
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".numfield")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func run(out io.Writer, s settings) error {
	logger, closeLog, err := openLogger(s.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("form started", "listing", s.Listing.String())

	p := tea.NewProgram(newForm(s.Listing, logger, field.NewTerminalClipboard(os.Stderr)))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run form: %w", err)
	}

	f, ok := final.(form)
	if !ok || !f.submitted {
		logger.Info("form closed without submitting")
		return nil
	}
	l := f.current()
	logger.Info("form submitted", "listing", l.String())
	_, err = io.WriteString(out, summary(defaultLang, l))
	return err
}
