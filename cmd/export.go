package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/react-guide/internal/content"
	"github.com/ziadkadry99/react-guide/internal/export"
	"github.com/ziadkadry99/react-guide/internal/progress"
	"github.com/ziadkadry99/react-guide/internal/theme"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the guide as a static website",
	Long:  `Writes every page as static HTML. Theme and menus then run entirely in the browser, with the theme kept in local storage.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "override output directory (defaults to export.output_dir)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	outputDir := cfg.Export.OutputDir
	if override, _ := cmd.Flags().GetString("output"); override != "" {
		outputDir = override
	}

	lib, err := content.Default()
	if err != nil {
		return fmt.Errorf("loading pages: %w", err)
	}
	fallback, err := theme.Parse(cfg.Theme.Default)
	if err != nil {
		return err
	}

	exp := export.New(lib, export.Options{
		OutputDir: outputDir,
		Title:     cfg.Site.Title,
		Theme:     fallback,
	}, progress.NewReporter("Exporting pages"), logger)

	n, err := exp.Export()
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Exported %d pages to %s\n", n, outputDir)
	return nil
}
