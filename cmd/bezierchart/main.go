package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"bezierchart/config"
)

var version = "0.1.0"

type rootOptions struct {
	configPath string
}

// load returns the sample chart when no config file is given.
func (o *rootOptions) load() (*config.File, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(o.configPath)
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "bezierchart",
		Short: "Animated Bezier line chart",
		Long: `bezierchart draws a labeled series as a smooth line chart with a
gradient fill that is revealed from left to right. It can show the chart in a
window, export frames as PNG or dump the drawing commands.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Chart description (YAML); the sample chart when empty")

	rootCmd.AddCommand(newShowCommand(opts))
	rootCmd.AddCommand(newRenderCommand(opts))
	rootCmd.AddCommand(newCommandsCommand(opts))
	rootCmd.AddCommand(newWatchCommand(opts))
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
