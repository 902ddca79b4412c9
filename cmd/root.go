package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/react-guide/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "reactguide",
	Short: "Serve the React Guide: hooks, workshops and design patterns",
	Long: `React Guide serves a tutorial site covering React hooks, hands-on
workshops and SOLID design patterns. Each visitor gets a light or dark
theme that follows their system preference until they pick one, and a
navigation bar whose menus behave the same with or without script.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
