package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/termfx/rgx"
)

func newDiffCmd(opts *options) *cobra.Command {
	var flags string

	cmd := &cobra.Command{
		Use:   "diff <document-a> <document-b>",
		Short: "Diff the rendered text of two pattern documents",
		Long: `Renders both documents and prints a unified diff of the results. Exits
zero when the rendered expressions are identical.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := renderFile(args[0], flags)
			if err != nil {
				return fail(cmd, opts, err)
			}
			b, err := renderFile(args[1], flags)
			if err != nil {
				return fail(cmd, opts, err)
			}
			if a == b {
				fmt.Fprintln(cmd.OutOrStdout(), "identical")
				return nil
			}
			text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(a),
				B:        difflib.SplitLines(b),
				FromFile: args[0],
				ToFile:   args[1],
				Context:  3,
			})
			if err != nil {
				return fail(cmd, opts, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			if !strings.HasSuffix(text, "\n") {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return fmt.Errorf("patterns differ")
		},
	}
	cmd.Flags().StringVarP(&flags, "flags", "f", "", "Global inline flags applied to both sides.")
	return cmd
}

func renderFile(path, flags string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	tree, err := rgx.UnmarshalTree(data)
	if err != nil {
		return "", err
	}
	return rgx.Render(tree, flags), nil
}
