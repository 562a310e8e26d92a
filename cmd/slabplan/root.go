package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/slabcopy/region"
	"github.com/wippyai/slabcopy/wasmmem"
)

// log is the command's logger, configured by --verbose.
var log = zap.NewNop()

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "slabplan",
		Short: "Plan placements of WIT-typed payloads into a raw memory region.",
		Long: `slabplan copies one encoded payload per WIT type into a region of the given ` +
			`size and shows where each landed, including alignment gaps and padding. ` +
			`The region is an anonymous mapping by default, or WebAssembly linear memory with --wasm.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			l, err := newLogger(verbose)
			if err != nil {
				return err
			}
			log = l
			region.SetLogger(l.Named("region"))
			wasmmem.SetLogger(l.Named("wasmmem"))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log region allocation and placement details")

	root.AddCommand(newPlaceCmd(), newViewCmd())
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
