package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"bezierchart/config"
)

const watchDebounce = 100 * time.Millisecond

func newWatchCommand(opts *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the chart to PNG whenever the config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.configPath == "" {
				return fmt.Errorf("watch needs --config")
			}
			f, err := opts.load()
			if err != nil {
				return err
			}
			if err := renderPNG(f, out, 1); err != nil {
				return err
			}
			log.Printf("Rendered %s", out)
			return watchFile(cmd.Context(), opts.configPath, func() {
				next, err := config.Load(opts.configPath)
				if err != nil {
					log.Printf("Keeping previous chart: %v", err)
					return
				}
				if err := renderPNG(next, out, 1); err != nil {
					log.Printf("Render failed: %v", err)
					return
				}
				log.Printf("Rendered %s", out)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "chart.png", "Output PNG file")
	return cmd
}

// watchFile calls onChange once the file at path has been written or
// replaced and no further events arrived for watchDebounce. It returns when
// ctx is done.
func watchFile(ctx context.Context, path string, onChange func()) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s failed: %w", path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// editors often replace the file, so the directory is watched
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	debounce := time.NewTimer(0)
	<-debounce.C
	pending := false
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			pending = true
			debounce.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Println("Watcher error:", err)
		case <-debounce.C:
			if pending {
				pending = false
				onChange()
			}
		}
	}
}
