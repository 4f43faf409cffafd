package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termfx/rgx"
)

// renderResult is the JSON output shape shared by render, glob and show.
type renderResult struct {
	Rendered string        `json:"rendered"`
	Flags    string        `json:"flags,omitempty"`
	Captures []rgx.CaptureInfo `json:"captures,omitempty"`
}

func newRenderCmd(opts *options) *cobra.Command {
	var flags string

	cmd := &cobra.Command{
		Use:   "render [document]",
		Short: "Render a JSON pattern document to regex text",
		Long: `Reads a JSON pattern document from the given file (or stdin for "-" or no
argument), builds the node tree with full validation, and prints the
rendered expression.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return fail(cmd, opts, err)
			}
			tree, err := rgx.UnmarshalTree(data)
			if err != nil {
				return fail(cmd, opts, err)
			}
			emitRendered(cmd, opts, tree, flags)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags, "flags", "f", "", "Global inline flags, e.g. \"im\".")
	return cmd
}

func emitRendered(cmd *cobra.Command, opts *options, tree rgx.Pattern, flags string) {
	rendered := rgx.Render(tree, flags)
	if opts.jsonOut {
		out, _ := json.Marshal(renderResult{
			Rendered: rendered,
			Flags:    flags,
			Captures: rgx.Captures(tree),
		})
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), rendered)
}

func newEscapeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "escape <text>",
		Short: "Escape text for literal matching",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			emitRendered(cmd, opts, rgx.Text(args[0]), "")
			return nil
		},
	}
}

func newGlobCmd(opts *options) *cobra.Command {
	var flags string

	cmd := &cobra.Command{
		Use:   "glob <pattern>",
		Short: "Translate a glob into regex text",
		Long: `Translates a doublestar-style glob (*, **, ?, [...], {a,b}) into the
equivalent regular expression.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := rgx.FromGlob(args[0])
			if err != nil {
				return fail(cmd, opts, err)
			}
			emitRendered(cmd, opts, tree, flags)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags, "flags", "f", "", "Global inline flags, e.g. \"i\".")
	return cmd
}
