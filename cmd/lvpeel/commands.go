package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpeel/peel"
)

func (a *app) cmdPeel() *cobra.Command {
	return &cobra.Command{
		Use:     "peel FILE",
		Short:   "Remove cells until none at or below the threshold remain",
		Args:    cobra.ExactArgs(1),
		Example: `  lvpeel peel grid.txt --threshold 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, _, err := a.runPeel(cmd, args[0])
			if err != nil {
				return err
			}
			return rep.write(cmd.OutOrStdout(), a.json)
		},
	}
}

func (a *app) cmdCount() *cobra.Command {
	return &cobra.Command{
		Use:     "count FILE",
		Short:   "Count cells already at or below the threshold, without cascading",
		Args:    cobra.ExactArgs(1),
		Example: `  lvpeel count grid.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.settings(cmd)
			if err != nil {
				return err
			}
			g, err := a.readGrid(cmd, args[0], c)
			if err != nil {
				return err
			}
			rep := &report{
				Command:   "count",
				Cells:     g.ActiveCount(),
				Threshold: c.Threshold,
				Eligible:  peel.CountEligible(g, c.Threshold),
			}
			return rep.write(cmd.OutOrStdout(), a.json)
		},
	}
}

func (a *app) cmdRender() *cobra.Command {
	return &cobra.Command{
		Use:     "render FILE",
		Short:   "Peel and print the surviving grid",
		Args:    cobra.ExactArgs(1),
		Example: `  lvpeel render - < grid.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, grid, err := a.runPeel(cmd, args[0])
			if err != nil {
				return err
			}
			rep.Command = "render"
			if a.json {
				rep.Grid = grid
				return rep.write(cmd.OutOrStdout(), true)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), grid)
			return err
		},
	}
}

// runPeel loads settings and the grid, peels in place and summarises.
func (a *app) runPeel(cmd *cobra.Command, path string) (*report, string, error) {
	c, err := a.settings(cmd)
	if err != nil {
		return nil, "", err
	}
	log := a.logger(cmd, c)

	g, err := a.readGrid(cmd, path, c)
	if err != nil {
		return nil, "", err
	}
	log.Info("grid loaded", "width", g.Width, "height", g.Height, "cells", g.ActiveCount(), "conn", g.Conn.String())

	popts, err := c.PeelOptions()
	if err != nil {
		return nil, "", err
	}
	rep := &report{
		Command:   "peel",
		Cells:     g.ActiveCount(),
		Threshold: c.Threshold,
		Strategy:  c.Strategy,
		Eligible:  peel.CountEligible(g, c.Threshold),
	}

	res, err := peel.PeelInPlace(g, c.Threshold, append(popts, peel.WithLogger(log))...)
	if err != nil {
		return nil, "", err
	}
	rep.Removed = res.Removed
	rep.Remaining = res.Remaining
	rep.Reason = res.Reason.String()
	rep.Islands = len(g.ConnectedComponents())
	log.Info("peel finished", "removed", res.Removed, "remaining", res.Remaining, "islands", rep.Islands)

	return rep, g.String(), nil
}
