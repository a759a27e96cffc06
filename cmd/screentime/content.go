package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/screentime/internal/content"
	"github.com/spf13/cobra"
)

func newContentCmd() *cobra.Command {
	var format string
	var list bool

	cmd := &cobra.Command{
		Use:   "content [name-or-file]",
		Short: "Print the page content, or list built-in content sets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := "default"
			if len(args) == 1 {
				ref = args[0]
			}
			return runContent(cmd.OutOrStdout(), ref, format, list)
		},
	}
	cmd.Flags().StringVar(&format, "format", "md", "Output format: md or json")
	cmd.Flags().BoolVar(&list, "list", false, "List built-in content names")
	return cmd
}

func runContent(w io.Writer, ref, format string, list bool) error {
	if list {
		names, err := content.List()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, strings.Join(names, "\n"))
		return nil
	}

	site, err := content.Resolve(ref)
	if err != nil {
		return exitError(3, "failed to load content: %v", err)
	}
	switch format {
	case "md":
		fmt.Fprint(w, content.Markdown(site))
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(site); err != nil {
			return fmt.Errorf("failed to marshal content: %w", err)
		}
	default:
		return exitError(3, "unknown format: %s", format)
	}
	return nil
}
