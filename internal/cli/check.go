package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/linkaudit/internal/config"
	"github.com/vvka-141/linkaudit/internal/logging"
	"github.com/vvka-141/linkaudit/internal/params"
	"github.com/vvka-141/linkaudit/internal/report"
	"github.com/vvka-141/linkaudit/internal/services"
	"github.com/vvka-141/linkaudit/internal/tui"
	"github.com/vvka-141/linkaudit/pkg/linkaudit"
)

type checkFlagValues struct {
	configPath       string
	mode             string
	format           string
	color            string
	primaryField     string
	secondaryField   string
	forbiddenDomains []string
}

// checkOptions is everything a check run needs, resolved from flags, the
// config file, the environment and defaults (highest precedence first).
type checkOptions struct {
	path   string
	mode   linkaudit.Mode
	format report.Format
	color  tui.ColorMode
	rules  linkaudit.Rules
}

func newCheckCmd() *cobra.Command {
	var flags checkFlagValues

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Check a data file for bad product links",
		Long: `Check reads one data file and reports product-link problems.

The report lists how many primary link fields were found, how many point to
a forbidden host, and every suspected problem with its line number.

Path Resolution (first match wins):
  1. The path argument
  2. 'path' in linkaudit.yaml (--config, or ./linkaudit.yaml)
  3. $LINKAUDIT_PATH (a .env file in the working directory is loaded first)

Modes:
  line        Substring checks per line (default)
  structural  Tokenizes the file and checks each object literal

Examples:
  # Check the scales data file
  linkaudit check data/handpan-data/scales.ts

  # Structural check with JSON output
  linkaudit check scales.ts --mode structural --format json

  # Also forbid a second marketplace
  linkaudit check scales.ts \
    --forbidden-domain smartstore.naver.com="Smart Store" \
    --forbidden-domain coupang.com=Coupang`,
		Args: OptionalPath,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "",
		"Path to a config file (default: ./linkaudit.yaml if present)")
	cmd.Flags().StringVarP(&flags.mode, "mode", "m", "",
		"Scan mode: line|structural (default: line)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "",
		"Report format: text|json|yaml (default: text)")
	cmd.Flags().StringVar(&flags.color, "color", "",
		"Style the text report: auto|always|never (default: auto)\n"+
			"auto disables styling when stdout is not a terminal or $NO_COLOR/$CI is set")
	cmd.Flags().StringVar(&flags.primaryField, "primary-field", "",
		"Primary link field name (default: ownUrl)")
	cmd.Flags().StringVar(&flags.secondaryField, "secondary-field", "",
		"Secondary link field name (default: ownUrlEn)")
	cmd.Flags().StringArrayVar(&flags.forbiddenDomains, "forbidden-domain", nil,
		"Forbidden host as host=Label (can be specified multiple times)\n"+
			"Replaces the configured list. Example: --forbidden-domain smartstore.naver.com=\"Smart Store\"")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags checkFlagValues) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)

	opts, err := resolveCheckOptions(cmd, args, flags, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	auditor := services.NewDefaultAuditService(logger, opts.rules, opts.mode)
	result, err := auditor.Audit(ctx, opts.path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styled := false
	if opts.format == report.FormatText {
		f, _ := out.(*os.File)
		styled = tui.UseColor(opts.color, f)
	}

	renderer, err := report.New(opts.format, styled)
	if err != nil {
		return err
	}
	return renderer.Render(out, result)
}

// resolveCheckOptions merges flags > config file > environment > defaults.
func resolveCheckOptions(cmd *cobra.Command, args []string, flags checkFlagValues, logger linkaudit.Logger) (checkOptions, error) {
	_ = godotenv.Load()

	projectCfg, err := loadProjectConfig(flags.configPath)
	if err != nil {
		return checkOptions{}, err
	}
	if projectCfg != nil {
		logger.Verbose("Loaded config from %s", projectCfg.BaseDir)
	}

	var opts checkOptions

	switch {
	case len(args) > 0 && strings.TrimSpace(args[0]) != "":
		opts.path = args[0]
	case projectCfg.DataPath() != "":
		opts.path = projectCfg.DataPath()
	default:
		opts.path = os.Getenv(linkaudit.EnvPath)
	}
	if opts.path == "" {
		return checkOptions{}, missingPathError(cmd)
	}

	if opts.mode, err = linkaudit.ParseMode(pick(flags.mode, projectCfg, func(c *config.ProjectConfig) string { return c.Mode })); err != nil {
		return checkOptions{}, err
	}
	if opts.format, err = report.ParseFormat(pick(flags.format, projectCfg, func(c *config.ProjectConfig) string { return c.Format })); err != nil {
		return checkOptions{}, err
	}
	if opts.color, err = tui.ParseColorMode(pick(flags.color, projectCfg, func(c *config.ProjectConfig) string { return c.Color })); err != nil {
		return checkOptions{}, fmt.Errorf("%w: %w", err, linkaudit.ErrUsage)
	}

	rules := projectCfg.ApplyRules(linkaudit.DefaultRules())
	if flags.primaryField != "" {
		rules.PrimaryField = flags.primaryField
	}
	if flags.secondaryField != "" {
		rules.SecondaryField = flags.secondaryField
	}
	if len(flags.forbiddenDomains) > 0 {
		domains, err := params.ParseForbiddenDomains(flags.forbiddenDomains)
		if err != nil {
			return checkOptions{}, err
		}
		rules.ForbiddenDomains = domains
	}
	if err := rules.Validate(); err != nil {
		return checkOptions{}, err
	}
	opts.rules = rules

	logger.Verbose("Path: %s", opts.path)
	logger.Verbose("Mode: %s, format: %s, color: %s", opts.mode, opts.format, opts.color)
	logger.Verbose("Fields: %s / %s, forbidden: %s", rules.PrimaryField, rules.SecondaryField, rules.ViolationLabel())
	return opts, nil
}

// pick returns the flag value when set, else the config value.
func pick(flagValue string, cfg *config.ProjectConfig, field func(*config.ProjectConfig) string) string {
	if flagValue != "" || cfg == nil {
		return flagValue
	}
	return field(cfg)
}

// loadProjectConfig loads the explicit config file, or ./linkaudit.yaml when
// present. Returns nil config if no file is found and none was requested.
func loadProjectConfig(configPath string) (*config.ProjectConfig, error) {
	if configPath != "" {
		projectCfg, err := config.LoadFile(configPath)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("config file %s not found: %w", configPath, linkaudit.ErrInvalidConfig)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", configPath, err)
		}
		return projectCfg, nil
	}

	projectCfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w", linkaudit.ConfigFileName, err)
	}
	return projectCfg, nil
}
