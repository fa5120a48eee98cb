package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/beatzboy/site/internal/config"
)

// NewRootCmd creates the root command. Running it without a subcommand serves the site.
func NewRootCmd() *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:   "beatzboy",
		Short: "Serve the Beatzboy promotional site",
		Long: `beatzboy serves the Beatzboy home page and the Gifted album page.

Configuration is read from BEATZBOY_* environment variables; flags override them.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServeCmd(cmd, v)
		},
	}

	bindServeFlags(cmd, v)

	cmd.AddCommand(NewServeCmd(v))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// bindServeFlags registers the serve flags on cmd, inherited by its
// subcommands, and binds them to v.
func bindServeFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()
	flags.String("addr", "", "HTTP listen address (env "+config.EnvName(config.KeyListenAddr)+")")
	flags.String("content", "", "content YAML file; empty uses the built-in content (env "+config.EnvName(config.KeyContentPath)+")")
	flags.String("log-level", "", "log level: debug, info, warn, error (env "+config.EnvName(config.KeyLogLevel)+")")
	flags.Bool("no-splash", false, "render content immediately without the splash screen")

	_ = v.BindPFlag(config.KeyListenAddr, flags.Lookup("addr"))
	_ = v.BindPFlag(config.KeyContentPath, flags.Lookup("content"))
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
}
