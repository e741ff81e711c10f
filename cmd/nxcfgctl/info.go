package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DarkMatterCore/nx-cfg-parser/pkg/settings"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <blob>",
		Short: "Validate a settings blob and report basic metadata",
		Long: `The info command validates a binary system settings table and displays
basic metadata: entry count, data region location, categories, and per-type
entry counts.

Example:
  nxcfgctl info system_settings.bin
  nxcfgctl info system_settings.bin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	blobPath := args[0]

	printVerbose("Opening settings blob: %s\n", blobPath)

	info, err := settings.StatFile(blobPath)
	if err != nil {
		return fmt.Errorf("failed to stat settings blob: %w", err)
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nSettings Table Information:\n")
	printInfo("  File: %s\n", blobPath)
	if stat, err := os.Stat(blobPath); err == nil {
		printInfo("  Size: %d bytes\n", stat.Size())
	}
	printInfo("  Entries: %d\n", info.EntryCount)
	printInfo("  Data region: offset 0x%x, %d bytes\n", info.DataOffset, info.DataSize)

	printInfo("\nCategories (%d):\n", len(info.Categories))
	for _, c := range info.Categories {
		printInfo("  %s\n", c)
	}

	printInfo("\nEntries by type:\n")
	for _, name := range []string{"String", "U8", "U32", "Bool", "U64", "HexBlob"} {
		if n := info.TypeCounts[name]; n > 0 {
			printInfo("  %-8s %d\n", name, n)
		}
	}
	return nil
}
