package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"

	"github.com/iburimskiy/ambient-scenes/internal/config"
	"github.com/iburimskiy/ambient-scenes/internal/game"
	"github.com/iburimskiy/ambient-scenes/internal/logs"
)

func main() {
	opts, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if opts.Quiet {
		logs.Silence()
	}

	g, err := game.New(opts)
	if err != nil {
		logs.ErrorLogger.Fatal(err)
	}
	defer g.Close()

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("Ambient Scenes - Drag to orbit, click to advance, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(opts.Fullscreen)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logs.ErrorLogger.Print(err)
		g.Close()
		os.Exit(1)
	}
}
