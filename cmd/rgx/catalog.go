package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/termfx/rgx"
	"github.com/termfx/rgx/db"
)

func openCatalog(opts *options) (*gorm.DB, error) {
	conn, err := db.Connect(opts.dbPath, opts.debug)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return conn, nil
}

func newSaveCmd(opts *options) *cobra.Command {
	var (
		flags string
		notes string
	)

	cmd := &cobra.Command{
		Use:   "save <name> [document]",
		Short: "Store a pattern document in the catalog",
		Long: `Builds the document, renders it with the given flags, and upserts the
result under the given name. The stored record keeps both the document and
the rendered text.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[1:])
			if err != nil {
				return fail(cmd, opts, err)
			}
			tree, err := rgx.UnmarshalTree(data)
			if err != nil {
				return fail(cmd, opts, err)
			}
			// Re-marshal so the stored document is the canonical form.
			doc, err := rgx.MarshalTree(tree)
			if err != nil {
				return fail(cmd, opts, err)
			}
			conn, err := openCatalog(opts)
			if err != nil {
				return fail(cmd, opts, err)
			}
			rec, err := db.SavePattern(conn, args[0], doc, rgx.Render(tree, flags), flags, notes)
			if err != nil {
				return fail(cmd, opts, err)
			}
			if opts.jsonOut {
				out, _ := json.Marshal(rec)
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s: %s\n", rec.Name, rec.Rendered)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags, "flags", "f", "", "Global inline flags stored with the pattern.")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Free-form notes stored with the pattern.")
	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cataloged patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openCatalog(opts)
			if err != nil {
				return fail(cmd, opts, err)
			}
			recs, err := db.ListPatterns(conn)
			if err != nil {
				return fail(cmd, opts, err)
			}
			if opts.jsonOut {
				out, _ := json.Marshal(recs)
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFLAGS\tRENDERED")
			for _, rec := range recs {
				fmt.Fprintf(w, "%s\t%s\t%s\n", rec.Name, rec.Flags, rec.Rendered)
			}
			return w.Flush()
		},
	}
}

func newShowCmd(opts *options) *cobra.Command {
	var asDoc bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print one cataloged pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openCatalog(opts)
			if err != nil {
				return fail(cmd, opts, err)
			}
			rec, err := db.GetPattern(conn, args[0])
			if err != nil {
				return fail(cmd, opts, err)
			}
			if asDoc {
				fmt.Fprintln(cmd.OutOrStdout(), string(rec.Tree))
				return nil
			}
			if opts.jsonOut {
				out, _ := json.Marshal(rec)
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), rec.Rendered)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asDoc, "doc", false, "Print the stored JSON document instead of the rendered text.")
	return cmd
}
