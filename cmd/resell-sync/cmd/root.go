// Package cmd implements the resell-sync CLI commands.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/resellops/resell-sync/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "resell-sync",
	Short: "Cross-platform resale delisting automation",
	Long: "resell-sync keeps multi-platform resale inventory consistent.\n" +
		"When an item sells on one marketplace it delists the remaining\n" +
		"listings on the others, and it drafts Depop and Poshmark listings\n" +
		"from existing eBay items.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Root exposes the command tree for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initEnv)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().
		String("log-level", "", "override logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().
		Bool("simulate", false, "force simulate mode, no listings are touched")

	cobra.CheckErr(viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("simulate", rootCmd.PersistentFlags().Lookup("simulate")))

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(sellCmd())
	rootCmd.AddCommand(crosslistCmd())
	rootCmd.AddCommand(queueCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(versionCommand())
}

func initEnv() {
	viper.SetEnvPrefix("RESELL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads the YAML config and applies flag and environment
// overrides on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if lvl := viper.GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	if viper.GetBool("simulate") {
		cfg.Dispatch.Simulate = true
	}
	return cfg, nil
}
