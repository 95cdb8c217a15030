// Command missioninfo prints the cadence and basis-vector conventions of
// the supported missions.
//
// Usage:
//
//	missioninfo [flags] [mission-name ...]
//
// Without arguments it prints info for all supported missions.
//
// Examples:
//
//	missioninfo tess
//	missioninfo -list
//	missioninfo kepler k2
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Nschanche/lightkurve/cbv"
)

func main() {
	listOnly := flag.Bool("list", false, "list supported mission names and exit")
	flag.Parse()

	conventions := cbv.Conventions()

	if *listOnly {
		for _, c := range conventions {
			fmt.Println(strings.ToLower(c.Mission.String()))
		}

		return
	}

	selected := conventions

	if args := flag.Args(); len(args) > 0 {
		selected = selected[:0:0]

		for _, name := range args {
			found := false

			for _, c := range conventions {
				if strings.EqualFold(name, c.Mission.String()) {
					selected = append(selected, c)
					found = true

					break
				}
			}

			if !found {
				fmt.Fprintf(os.Stderr, "missioninfo: unknown mission %q\n", name)
				os.Exit(1)
			}
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MISSION\tIDENTIFIERS\tCADENCE\tNOTES")

	for _, c := range selected {
		fmt.Fprintf(w, "%s\t%s\t%.1fs\t%s\n", c.Mission, c.Identifiers, c.CadenceSec, c.Notes)
	}

	w.Flush()
}
