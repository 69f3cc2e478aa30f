package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Alp4ka/s2pager"
	"github.com/Alp4ka/s2pager/client"
	"github.com/Alp4ka/s2pager/internal/config"
	"github.com/Alp4ka/s2pager/internal/logging"
)

// app holds what PersistentPreRunE builds for the subcommands.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	client *client.Client
}

var _flagKeys = map[string]string{
	"base-url":    "api.base_url",
	"page-limit":  "api.page_limit",
	"timeout":     "api.timeout",
	"user-agent":  "api.user_agent",
	"log-level":   "log.level",
	"log-format":  "log.format",
	"archive-dsn": "archive.dsn",
	"archive-db":  "archive.driver",
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:          "s2pager",
		Short:        "Pages through Scratch API listings",
		Long:         "Streams paginated Scratch API listings as JSON lines, resumes them from a cursor token and archives them into a database",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "path to a config file (yaml, json or toml)")
	flags.String("base-url", client.DefaultBaseURL, "base URL of the API")
	flags.Int("page-limit", s2pager.DefaultPageLimit, "largest page requested from the API (-1 disables the ceiling)")
	flags.Duration("timeout", client.DefaultTimeout, "timeout of a single request")
	flags.String("user-agent", client.DefaultUserAgent, "User-Agent header sent with every request")
	flags.String("log-level", "info", `log level ("trace", "debug", "info", "warn", "error")`)
	flags.String("log-format", "console", `log format ("console", "json")`)
	flags.String("archive-db", "sqlite", `archive database driver ("sqlite", "mysql", "postgres")`)
	flags.String("archive-dsn", "s2pager.db", "archive database connection string")

	for flag, key := range _flagKeys {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}

	registerListCmds(rootCmd, a)
	registerLookupCmds(rootCmd, a)
	registerArchiveCmds(rootCmd, a)

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.v, configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	logging.SetGlobalLogger(logger)
	cmd.SetContext(logger.WithContext(cmd.Context()))

	a.client, err = client.New(append(cfg.API.ClientOptions(), client.WithLogger(logger))...)
	if err != nil {
		return err
	}

	logging.Debug().Str("base_url", a.client.BaseURL()).Int("page_limit", a.client.PageLimit()).Msg("client configured")
	return nil
}
