package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

type options struct {
	jsonOut bool
	dbPath  string
	debug   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "rgx",
		Short:         "Build and render regular expressions from pattern documents",
		Long: `rgx composes regular expressions from JSON pattern documents and keeps a
local catalog of the results. It builds and renders pattern text only; it
never matches anything against input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&opts.jsonOut, "json", "j", false, "Output results in JSON format.")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", defaultDBPath(), "Catalog database path or libsql URL.")
	root.PersistentFlags().BoolVarP(&opts.debug, "debug", "v", false, "Enable verbose database logging.")

	root.AddCommand(
		newRenderCmd(opts),
		newEscapeCmd(opts),
		newGlobCmd(opts),
		newDiffCmd(opts),
		newSaveCmd(opts),
		newListCmd(opts),
		newShowCmd(opts),
	)
	return root
}

// defaultDBPath resolves the catalog location: RGX_DB wins, then a dotfile
// under the user home, then the working directory.
func defaultDBPath() string {
	if env := os.Getenv("RGX_DB"); env != "" {
		return env
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".rgx", "catalog.db")
	}
	return "catalog.db"
}

// fail prints the error in the requested format and returns it so cobra
// sets a non-zero exit status.
func fail(cmd *cobra.Command, opts *options, err error) error {
	ce := classify(err)
	if opts.jsonOut {
		fmt.Fprintln(cmd.ErrOrStderr(), ce.JSON())
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", ce.Error())
	}
	return err
}

// readInput loads the argument file, or stdin for "-" or no argument.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, nil
}
