package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lyra-docs/lyra/internal/content"
	"github.com/lyra-docs/lyra/internal/progress"
	"github.com/lyra-docs/lyra/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the documentation as a static website",
	Long:  `Writes the documentation sections as self-contained static HTML pages with a client-side search index. The AI Code Explainer needs a server and is left out.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "output directory (defaults to export.output_dir)")
	exportCmd.Flags().StringSlice("sections", nil, "section id globs to export (defaults to export.sections)")
	exportCmd.Flags().Bool("serve", false, "start a local HTTP server after exporting")
	exportCmd.Flags().Int("port", 8080, "port for the local server")
	exportCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.Export.OutputDir
	}
	patterns := cfg.Export.Sections
	if cmd.Flags().Changed("sections") {
		patterns, _ = cmd.Flags().GetStringSlice("sections")
	}

	generator := site.NewSiteGenerator(content.Default(), outputDir, patterns)
	generator.Reporter = progress.NewReporter("Exporting sections")
	pageCount, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d pages)\n", outputDir, pageCount)

	serve, _ := cmd.Flags().GetBool("serve")
	if !serve {
		return nil
	}
	port, _ := cmd.Flags().GetInt("port")
	openBrowser, _ := cmd.Flags().GetBool("open")
	if err := site.Serve(outputDir, port, openBrowser); err != nil {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}
