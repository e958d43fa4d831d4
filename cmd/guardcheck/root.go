package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/guards/pkg/config"
	"github.com/dmitrymomot/guards/pkg/environment"
	"github.com/dmitrymomot/guards/pkg/i18n"
	"github.com/dmitrymomot/guards/pkg/logger"
)

const serviceName = "guardcheck"

// Config is read from GUARDCHECK_* environment variables.
// Empty LogLevel and LogFormat keep the environment preset.
type Config struct {
	Env       string `env:"ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	Lang      string `env:"LANG" envDefault:"en"`
	Messages  string `env:"MESSAGES"`
}

type commandKey struct{}

// app carries state shared by subcommands once the root pre-run has finished.
type app struct {
	log  *slog.Logger
	tr   *i18n.Translator
	lang string
}

func newRootCmd() *cobra.Command {
	a := &app{log: logger.Discard()}

	rootCmd := &cobra.Command{
		Use:   serviceName,
		Short: "Validate values and function calls with guard expressions",
		Long: `guardcheck applies guards from the validator library to values given on
the command line, or wraps a built-in function with one guard per argument
plus one for the result.

Examples:
  guardcheck list
  guardcheck check -g is-number -g "in-range:0,10" 5
  guardcheck call div -g not-zero -g not-zero -g "greater-or-equal:4" 10 2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().String("env-file", "", "Path to a .env file with GUARDCHECK_* variables")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (json, text)")
	rootCmd.PersistentFlags().String("lang", "", "Language of validation messages (en, de, es)")
	rootCmd.PersistentFlags().String("messages", "", "Path to a YAML catalogue overriding validation messages")

	rootCmd.AddCommand(
		newListCmd(),
		newCheckCmd(a),
		newCallCmd(a),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return fmt.Errorf("failed to get env-file flag: %w", err)
	}

	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix("GUARDCHECK_"), config.WithEnvFiles(envFile)); err != nil {
		return err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if format, _ := cmd.Flags().GetString("log-format"); format != "" {
		cfg.LogFormat = format
	}
	if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
		cfg.Lang = lang
	}
	if messages, _ := cmd.Flags().GetString("messages"); messages != "" {
		cfg.Messages = messages
	}

	env := environment.Parse(cfg.Env)
	ctx := environment.WithContext(cmd.Context(), env)
	ctx = context.WithValue(ctx, commandKey{}, cmd.Name())
	cmd.SetContext(ctx)

	log, err := newLogger(cfg, env, cmd)
	if err != nil {
		return err
	}
	a.log = log

	var adapter i18n.TranslationAdapter = i18n.Defaults()
	if cfg.Messages != "" {
		adapter = i18n.MultiAdapter{adapter, i18n.NewFileAdapter(cfg.Messages)}
	}
	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithLogger(log))
	if err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}
	a.tr = tr
	a.lang = cfg.Lang
	return nil
}

// localize translates validation failures into the configured language.
func (a *app) localize(err error) error {
	if a.tr == nil {
		return err
	}
	return a.tr.Localize(a.lang, err)
}

func newLogger(cfg Config, env environment.Environment, cmd *cobra.Command) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithEnvironment(env, serviceName),
		logger.WithContextExtractors(environment.LoggerExtractor(), commandExtractor),
	}

	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}

	return logger.New(opts...), nil
}

func commandExtractor(ctx context.Context) (slog.Attr, bool) {
	name, _ := ctx.Value(commandKey{}).(string)
	attr := logger.Command(name)
	return attr, name != ""
}
