package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DarkMatterCore/nx-cfg-parser/pkg/settings"
)

var (
	dumpEncoding string
	dumpBOM      bool
	dumpStdout   bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpEncoding, "encoding", "utf8", "Output encoding (utf8, utf16le)")
	cmd.Flags().BoolVar(&dumpBOM, "with-bom", false, "Include byte-order mark (utf16le only)")
	cmd.Flags().BoolVar(&dumpStdout, "stdout", false, "Write to stdout instead of file")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <blob> [output.ini]",
		Short: "Decode a settings blob to INI-style text",
		Long: `The dump command decodes a binary system settings table and writes the
rendered text to a file or to stdout. On any decode error nothing is written.

Example:
  nxcfgctl dump system_settings.bin settings.ini
  nxcfgctl dump system_settings.bin --stdout
  nxcfgctl dump system_settings.bin settings.ini --encoding utf16le --with-bom`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	blobPath := args[0]
	var outputPath string
	if len(args) > 1 {
		outputPath = args[1]
	}

	if outputPath != "" && dumpStdout {
		return fmt.Errorf("cannot specify both output file and --stdout")
	}
	if outputPath == "" && !dumpStdout {
		return fmt.Errorf("must specify output file or use --stdout")
	}

	opts := settings.RenderOptions{WithBOM: dumpBOM}
	switch dumpEncoding {
	case "", "utf8", "UTF-8":
		// default
	case "utf16le", "UTF-16LE":
		opts.OutputEncoding = "UTF-16LE"
	default:
		return fmt.Errorf("unsupported encoding %q (want utf8 or utf16le)", dumpEncoding)
	}

	printVerbose("Decoding settings blob: %s\n", blobPath)

	text, err := settings.DumpFile(blobPath, opts)
	if err != nil {
		return fmt.Errorf("failed to dump settings: %w", err)
	}

	if dumpStdout {
		_, err = os.Stdout.Write(text)
		return err
	}

	if err := os.WriteFile(outputPath, text, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	printVerbose("Wrote %d bytes to %s\n", len(text), outputPath)
	return nil
}
