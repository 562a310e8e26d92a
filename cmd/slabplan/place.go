package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newPlaceCmd() *cobra.Command {
	opts := defaultOptions()
	var fields bool

	cmd := &cobra.Command{
		Use:   "place TYPE...",
		Short: "Place one payload per WIT type and print the offsets.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPlan(cmd.Context(), opts, args)
			if err != nil {
				return err
			}
			defer p.Close()

			out := cmd.OutOrStdout()
			r := renderer{styled: isTerminal(out)}
			width := terminalWidth(out)

			fmt.Fprintln(out, r.summary(p))
			fmt.Fprintln(out, r.table(p, -1))
			if fields {
				printFields(out, p)
			}
			fmt.Fprint(out, r.byteMap(p, mapColumns(width), -1))

			return p.err
		},
	}
	opts.bind(cmd)
	cmd.Flags().BoolVar(&fields, "fields", false, "also print record field offsets")
	return cmd
}

func printFields(w io.Writer, p *plan) {
	for i, e := range p.entries {
		if len(e.fields) == 0 {
			continue
		}
		names := make([]string, 0, len(e.fields))
		for name := range e.fields {
			names = append(names, name)
		}
		sort.Slice(names, func(a, b int) bool { return e.fields[names[a]] < e.fields[names[b]] })

		fmt.Fprintf(w, "%d %s\n", i, e.name)
		for _, name := range names {
			off := e.fields[name]
			if e.placed {
				fmt.Fprintf(w, "  %-16s +%d (at %d)\n", name, off, e.record.StartOffset+off)
			} else {
				fmt.Fprintf(w, "  %-16s +%d\n", name, off)
			}
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
