package main

import (
	"github.com/spf13/cobra"

	"chosenoffset.com/gridcaster/internal/placeholders"
)

var (
	flagTextureDir   string
	flagTextureScale int
)

var gentextureCmd = &cobra.Command{
	Use:   "gentexture",
	Short: "Write the procedural wall textures as PNG files",
	Long: `Writes one PNG per built-in pattern (bordered, brick, diagonal, grid, solid).
The same patterns are available without files as --texture builtin:<pattern>.`,
	Args: cobra.NoArgs,
	RunE: runGentexture,
}

func init() {
	gentextureCmd.Flags().StringVar(&flagTextureDir, "dir", "assets/textures", "Output directory")
	gentextureCmd.Flags().IntVar(&flagTextureScale, "scale", 1, "Integer upscale factor")
}

func runGentexture(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	paths, err := placeholders.GenerateAndSave(flagTextureDir, flagTextureScale)
	if err != nil {
		return err
	}
	for _, p := range paths {
		logger.Info("wrote texture", "path", p)
	}
	return nil
}
