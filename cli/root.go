package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ellekaen/VanityOS-Api/config"
)

// Version is overridden at build time with -ldflags "-X .../cli.Version=...".
var Version = "1.0.0"

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "vanityos",
	Short: "VanityOS Skincare API",
	Long: `VanityOS answers two questions about food and skin:

  - is a food ingredient comedogenic (pore-clogging)?
  - what food does a photo show, and how acne-friendly is it?

Run "vanityos serve" to start the HTTP API.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "vanityos v%s\n", Version)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	rootCmd.AddCommand(versionCmd)
}

// initConfig layers .env, the config file and environment variables into viper.
func initConfig() {
	if err := config.LoadDotEnv(envFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config file %s: %v\n", cfgFile, err)
		}
	}
}
