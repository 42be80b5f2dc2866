package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/spf13/cobra"

	"bezierchart/config"
	"bezierchart/internal/ui"
)

var mainWindow fyne.Window

func newShowCommand(opts *rootOptions) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the chart in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.load()
			if err != nil {
				return err
			}
			if watch && opts.configPath == "" {
				return fmt.Errorf("--watch needs --config")
			}
			return runShow(cmd.Context(), f, opts.configPath, watch)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the chart when the config file changes")
	return cmd
}

func runShow(ctx context.Context, f *config.File, path string, watch bool) error {
	// widgets need a running app, so the file is only checked here
	if err := ui.Check(f); err != nil {
		return err
	}

	a := app.New()
	a.Settings().SetTheme(theme.DarkTheme())
	screen := ui.NewChartScreen(f)
	mainWindow = a.NewWindow("Bezier Line Chart")
	mainWindow.SetContent(screen.Content())
	mainWindow.Resize(fyne.NewSize(float32(f.Width)+80, float32(f.Height)+160))
	mainWindow.CenterOnScreen()

	if watch {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			err := watchFile(ctx, path, func() {
				next, err := config.Load(path)
				if err != nil {
					log.Printf("Keeping previous chart: %v", err)
					return
				}
				fyne.Do(func() { screen.Apply(next) })
			})
			if err != nil {
				log.Printf("Live reload stopped: %v", err)
			}
		}()
	}

	mainWindow.ShowAndRun()
	log.Println("Application exiting.")
	return nil
}
