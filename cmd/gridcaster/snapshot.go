package main

import (
	"github.com/spf13/cobra"

	"chosenoffset.com/gridcaster/internal/app"
	"chosenoffset.com/gridcaster/internal/scene"
)

var (
	flagOut    string
	flagScale  int
	flagWidth  int
	flagHeight int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render one frame to an image file",
	Long: `Render a single frame from the spawn point without opening a window.
The output format follows the file extension: .webp or .png.`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	bindWorldFlags(snapshotCmd)
	snapshotCmd.Flags().StringVarP(&flagOut, "out", "o", "snapshot.webp", "Output file (.webp or .png)")
	snapshotCmd.Flags().IntVar(&flagScale, "scale", 1, "Integer upscale factor")
	snapshotCmd.Flags().IntVar(&flagWidth, "width", 0, "Frame width (overrides screen.width)")
	snapshotCmd.Flags().IntVar(&flagHeight, "height", 0, "Frame height (overrides screen.height)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("width") {
		cfg.Screen.Width = flagWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Screen.Height = flagHeight
	}

	world, err := app.LoadWorld(cfg, logger)
	if err != nil {
		return err
	}

	view := scene.View{X: world.Spawn.X, Y: world.Spawn.Y, Angle: world.Spawn.Angle}
	fb, err := world.Snapshot(view)
	if err != nil {
		return err
	}
	if err := app.WriteImage(flagOut, fb.Image(), flagScale); err != nil {
		return err
	}
	logger.Info("wrote snapshot", "path", flagOut, "width", fb.Width*max(flagScale, 1), "height", fb.Height*max(flagScale, 1))
	return nil
}
