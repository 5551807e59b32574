// Package cli implements the loxo command-line tool.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	loxo "github.com/peteraglen/loxo-go-client"
	"github.com/peteraglen/loxo-go-client/internal/iostreams"
	"github.com/peteraglen/loxo-go-client/internal/logging"
)

// DefaultDomain is used when no domain is configured.
const DefaultDomain = "app.loxo.co"

// BuildInfo is the build metadata reported by the version command.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app is the state shared by all commands of one run.
type app struct {
	streams *iostreams.IOStreams
	v       *viper.Viper
	logger  zerolog.Logger
	info    BuildInfo

	cfgFile string
	envFile string
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, info BuildInfo) int {
	streams := iostreams.New()

	if err := NewRootCmd(streams, info).ExecuteContext(ctx); err != nil {
		streams.Errorf("%s\n", streams.Failure("Error: "+err.Error()))
		return 1
	}

	return 0
}

// NewRootCmd builds the command tree writing to streams.
func NewRootCmd(streams *iostreams.IOStreams, info BuildInfo) *cobra.Command {
	a := &app{
		streams: streams,
		v:       viper.New(),
		logger:  zerolog.Nop(),
		info:    info,
	}

	cmd := &cobra.Command{
		Use:   "loxo",
		Short: "Loxo API command-line client",
		Long: `loxo talks to the Loxo recruiting API of one agency.

Settings are read from flags, LOXO_* environment variables (optionally loaded
from a .env file) and a YAML config file (./loxo.yaml or ~/.config/loxo/loxo.yaml):

  domain, agency_slug, api_key, base_url, timeout, retry_attempts, retry_delay`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initialize,
	}

	a.v.SetDefault(loxo.KeyDomain, DefaultDomain)
	a.v.SetDefault("log_level", "info")
	a.v.SetDefault("log_format", "console")

	a.v.SetEnvPrefix("LOXO")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./loxo.yaml or ~/.config/loxo/loxo.yaml)")
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded into the environment if it exists")
	pf.String("log-level", "", "log level: debug, info, warn, error (env: LOXO_LOG_LEVEL)")
	pf.String("log-format", "", "log format: console or json (env: LOXO_LOG_FORMAT)")
	pf.String("domain", "", "Loxo domain (env: LOXO_DOMAIN, default "+DefaultDomain+")")
	pf.String("agency-slug", "", "agency slug (env: LOXO_AGENCY_SLUG)")
	pf.String("base-url", "", "base URL template with {domain} and {agency_slug} (env: LOXO_BASE_URL)")
	pf.String("timeout", "", "request timeout, in seconds or as a duration (env: LOXO_TIMEOUT)")
	pf.String("retry-attempts", "", "attempts per request (env: LOXO_RETRY_ATTEMPTS)")
	pf.String("retry-delay", "", "delay between attempts, in milliseconds or as a duration (env: LOXO_RETRY_DELAY)")

	for _, name := range []string{"log-level", "log-format", "domain", "agency-slug", "base-url", "timeout", "retry-attempts", "retry-delay"} {
		_ = a.v.BindPFlag(strings.ReplaceAll(name, "-", "_"), pf.Lookup(name))
	}

	cmd.AddCommand(
		newInfoCmd(a),
		newSyncCmd(a),
		newGetCmd(a),
		newSmokeCmd(a),
		newVersionCmd(a),
	)

	return cmd
}

// initialize loads the .env file and the config file, then sets up logging.
func (a *app) initialize(cmd *cobra.Command, _ []string) error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) || cmd.Flags().Changed("env-file") {
				return fmt.Errorf("failed to load env file: %w", err)
			}
		}
	}

	if err := a.readConfig(); err != nil {
		return err
	}

	a.logger = logging.New(a.streams.ErrOut, logging.Options{
		Level:  a.v.GetString("log_level"),
		Format: a.v.GetString("log_format"),
		Color:  a.streams.IsTerminal(),
	})

	return nil
}

func (a *app) readConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config: %w", err)
		}
		return nil
	}

	// No config type: a file named plain "loxo" in the working directory is
	// usually the binary itself.
	a.v.SetConfigName("loxo")
	a.v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(filepath.Join(home, ".config", "loxo"))
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config: %w", err)
		}
	}

	return nil
}

// newClient builds a client from the merged flags, environment and config file.
func (a *app) newClient() (*loxo.Client, error) {
	client, err := loxo.NewFromProvider(a.v, loxo.WithRequestLogger(logging.NewRequestLogger(a.logger)))
	if err != nil {
		var cfgErr *loxo.ConfigurationError
		if errors.As(err, &cfgErr) {
			return nil, fmt.Errorf("%w; set LOXO_%s or %s in the config file", err, strings.ToUpper(string(cfgErr.Field)), cfgErr.Field)
		}
		return nil, err
	}

	a.logger.Debug().Str("config", client.Config().String()).Msg("Loxo client configured")

	return client, nil
}
