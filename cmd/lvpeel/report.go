package main

import (
	"fmt"
	"io"

	"github.com/sugawarayuuta/sonnet"
)

// report is what every subcommand prints.
type report struct {
	Command   string `json:"command"`
	Cells     int    `json:"cells"`
	Threshold int    `json:"threshold"`
	Strategy  string `json:"strategy,omitempty"`
	Eligible  int    `json:"eligible"`
	Removed   int    `json:"removed"`
	Remaining int    `json:"remaining"`
	Islands   int    `json:"islands"`
	Reason    string `json:"reason,omitempty"`
	Grid      string `json:"grid,omitempty"`
}

func (r *report) write(w io.Writer, asJSON bool) error {
	if asJSON {
		b, err := sonnet.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}

	if r.Command == "count" {
		_, err := fmt.Fprintf(w, "cells: %d\nthreshold: %d\neligible: %d\n", r.Cells, r.Threshold, r.Eligible)
		return err
	}
	_, err := fmt.Fprintf(w,
		"cells: %d\nthreshold: %d\nstrategy: %s\neligible: %d\nremoved: %d\nremaining: %d\nislands: %d\nreason: %s\n",
		r.Cells, r.Threshold, r.Strategy, r.Eligible, r.Removed, r.Remaining, r.Islands, r.Reason)

	return err
}
