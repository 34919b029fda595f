// Package cli implements the xmpgen command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/typst/xmp-writer/internal/document"
	"github.com/typst/xmp-writer/logging"
)

var rootCmd = &cobra.Command{
	Use:   "xmpgen [flags] input.yaml",
	Short: "Generate an XMP metadata packet from a YAML description",
	Long: `xmpgen reads a YAML description of document metadata and renders it
into an XMP packet suitable for embedding in a PDF or image file.

The description may set Dublin Core properties (title, creators, subjects),
XMP Basic dates, Adobe PDF properties, and PDF/A identification.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringP("out", "o", "", "Write the packet to this file instead of stdout")
	rootCmd.Flags().String("about", "", "Override the rdf:about attribute of the description")
	rootCmd.Flags().Bool("generate-ids", false, "Generate fresh document and instance GUIDs")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable debug output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := logging.Leveled{
		Logger:  logging.NewStandardLogger(cmd.ErrOrStderr()),
		Verbose: verbose,
	}

	input, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer input.Close()

	doc, err := document.Decode(input)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("about") {
		doc.About, _ = cmd.Flags().GetString("about")
	}

	generateIDs, _ := cmd.Flags().GetBool("generate-ids")
	packet, err := doc.Render(document.Options{
		GenerateIDs: generateIDs,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	logger.Logf(logging.Debug, "rendered %d byte packet", len(packet))

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		_, err := cmd.OutOrStdout().Write(packet)
		return err
	}
	if err := os.WriteFile(out, packet, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Logf(logging.Info, "wrote %s", out)
	return nil
}
