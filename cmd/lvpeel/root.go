package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpeel/config"
	"github.com/katalvlaran/lvpeel/gridgraph"
	"github.com/katalvlaran/lvpeel/peel"
)

// app carries flag values shared by every subcommand.
type app struct {
	configPath  string
	threshold   int
	maxPriority int
	strategy    string
	conn        string
	logLevel    string
	json        bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "lvpeel",
		Short:        "Cascading removal on occupancy grids",
		Long:         "Peel cells with few live neighbours out of a grid, letting each removal expose more.",
		SilenceUsage: true,
	}
	cobra.EnableCommandSorting = false
	root.CompletionOptions.HiddenDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	pf.IntVarP(&a.threshold, "threshold", "t", peel.DefaultThreshold, "largest neighbour count that is still removed")
	pf.IntVar(&a.maxPriority, "max-priority", -1, "bucket queue bound (-1 derives it from the grid)")
	pf.StringVar(&a.strategy, "strategy", "bucket", "priority queue: bucket or heap")
	pf.StringVar(&a.conn, "conn", "moore", "neighbourhood: moore or orthogonal")
	pf.StringVar(&a.logLevel, "log-level", "INFO", "DEBUG, INFO, WARN or ERROR")
	pf.BoolVar(&a.json, "json", false, "print the report as JSON")

	root.AddCommand(a.cmdPeel(), a.cmdCount(), a.cmdRender())

	return root
}

// settings merges the config file (if any) with explicitly set flags.
func (a *app) settings(cmd *cobra.Command) (*config.Config, error) {
	c := config.Default()
	if a.configPath != "" {
		var err error
		if c, err = config.Load(a.configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("threshold") {
		c.Threshold = a.threshold
	}
	if flags.Changed("max-priority") {
		c.MaxPriority = a.maxPriority
	}
	if flags.Changed("strategy") {
		c.Strategy = a.strategy
	}
	if flags.Changed("conn") {
		c.Connectivity = a.conn
	}
	if flags.Changed("log-level") {
		c.LogLevel = a.logLevel
	}

	return c, c.Validate()
}

// logger writes text logs to the command's stderr at the configured level.
func (a *app) logger(cmd *cobra.Command, c *config.Config) *slog.Logger {
	lvl, _ := c.SlogLevel() // validated in settings
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
}

// readGrid parses the grid named by path; "-" reads stdin.
func (a *app) readGrid(cmd *cobra.Command, path string, c *config.Config) (*gridgraph.Grid, error) {
	gopts, err := c.GridOptions()
	if err != nil {
		return nil, err
	}

	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open grid: %w", err)
		}
		defer f.Close()
		r = f
	}

	return gridgraph.Parse(r, gopts)
}
