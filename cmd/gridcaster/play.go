package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"chosenoffset.com/gridcaster/internal/app"
	"chosenoffset.com/gridcaster/internal/config"
	"chosenoffset.com/gridcaster/internal/game"
	"chosenoffset.com/gridcaster/internal/render"
	ebitenrender "chosenoffset.com/gridcaster/internal/render/ebiten"
	"chosenoffset.com/gridcaster/internal/render/terminal"
)

var (
	flagHost        string
	flagFPS         int
	flagShowTexture bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Walk the map",
	Long: `Open the first-person view and walk the map.

Controls:
  W/S, Up/Down      - Forward/back
  A/D               - Strafe left/right
  Q/E, Left/Right   - Turn
  Esc               - Quit (Ctrl+C also quits the terminal host)

Hosts:
  ebiten    - Desktop window (default)
  terminal  - Half-block pixels in the current terminal`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	bindWorldFlags(playCmd)
	playCmd.Flags().StringVar(&flagHost, "host", "", "Display host: ebiten or terminal (overrides host)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Terminal host frame rate (overrides fps)")
	playCmd.Flags().BoolVar(&flagShowTexture, "show-texture", false, "Draw the wall texture in the top-left corner")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = config.Host(flagHost)
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = flagFPS
	}
	if cmd.Flags().Changed("show-texture") {
		cfg.Render.ShowTexture = flagShowTexture
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	world, err := app.LoadWorld(cfg, logger)
	if err != nil {
		return err
	}

	var engine render.Engine
	follow := false
	switch cfg.Host {
	case config.HostTerminal:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("terminal host needs a TTY on stdout")
		}
		engine = terminal.NewEngine(logger, cfg.FPS)
		follow = true
	default:
		engine = ebitenrender.NewEngine(logger)
	}

	g, err := world.NewGame(engine.Input(), engine, logger, follow)
	if err != nil {
		return err
	}

	engine.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	engine.SetWindowTitle(game.Title(0))
	engine.SetWindowResizable(cfg.Screen.Resizable)

	logger.Info("starting", "host", cfg.Host, "map", world.Name, "caster", cfg.Caster.Kind)
	if err := engine.RunGame(g); err != nil {
		return err
	}
	logger.Info("bye", "frames", g.FrameCount)
	return nil
}
