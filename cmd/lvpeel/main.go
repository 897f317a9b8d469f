// Command lvpeel peels occupancy grids from the command line.
//
//	lvpeel peel grid.txt --threshold 3
//	lvpeel count grid.txt
//	lvpeel render - < grid.txt
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
