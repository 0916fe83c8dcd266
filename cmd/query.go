// file: cmd/query.go
// version: 1.0.0
// guid: 13950d08-ae20-4a6d-bf9b-720822daed98

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jdfalk/folio/internal/config"
	"github.com/jdfalk/folio/internal/content"
	"github.com/jdfalk/folio/internal/search"
)

var (
	searchCmd = &cobra.Command{
		Use:   "search <query>",
		Short: "Ranked fuzzy search across the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kindNames, _ := cmd.Flags().GetStringSlice("kind")
			limit, _ := cmd.Flags().GetInt("limit")
			verbose, _ := cmd.Flags().GetBool("verbose")

			kinds := make([]content.Kind, 0, len(kindNames))
			for _, name := range kindNames {
				k, err := content.ParseKind(name)
				if err != nil {
					return err
				}
				kinds = append(kinds, k)
			}

			catalog, _, err := loadCatalog()
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			results := search.Limit(catalog.Search(config.AppConfig.DefaultLanguage, query, kinds...), limit)
			printResults(cmd.OutOrStdout(), query, results, verbose)
			return nil
		},
	}

	showCmd = &cobra.Command{
		Use:   "show <kind> <id>",
		Short: "Print one record localized to --lang",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			kind, err := content.ParseKind(args[0])
			if err != nil {
				return err
			}
			catalog, _, err := loadCatalog()
			if err != nil {
				return err
			}
			view, ok := catalog.Lookup(kind, args[1], config.AppConfig.DefaultLanguage)
			if !ok {
				return fmt.Errorf("%s not found: %s", kind, args[1])
			}
			return writeFormatted(cmd.OutOrStdout(), format, view)
		},
	}

	listCmd = &cobra.Command{
		Use:   "list <kind>",
		Short: "List the records of one kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			featured, _ := cmd.Flags().GetBool("featured")
			kind, err := content.ParseKind(args[0])
			if err != nil {
				return err
			}
			if featured && kind != content.KindProject {
				return fmt.Errorf("--featured only applies to projects")
			}
			catalog, _, err := loadCatalog()
			if err != nil {
				return err
			}
			lang := config.AppConfig.DefaultLanguage

			var views []content.View
			if featured {
				for _, v := range catalog.Featured(lang) {
					views = append(views, v)
				}
			} else {
				views = catalog.List(kind, lang)
			}

			out := cmd.OutOrStdout()
			for _, v := range views {
				s := v.Summary()
				fmt.Fprintf(out, "%-24s %s\n", s.ID, titleStyle.Render(s.Title))
			}
			fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%d %s", len(views), kind.Plural())))
			return nil
		},
	}
)

func init() {
	searchCmd.Flags().StringSlice("kind", nil, "restrict to kinds (project, experience, page)")
	searchCmd.Flags().Int("limit", 10, "max results (0 for all)")
	searchCmd.Flags().BoolP("verbose", "v", false, "show the fields that matched")

	showCmd.Flags().StringP("output", "o", "json", "output format: json or yaml")

	listCmd.Flags().Bool("featured", false, "only featured projects")
}

func printResults(out io.Writer, query string, results []search.Result[content.Entry], verbose bool) {
	if len(results) == 0 {
		fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("No matches for %q", query)))
		return
	}
	for i, r := range results {
		s := r.Record.View.Summary()
		fmt.Fprintf(out, "%2d. %s %s %s %s\n",
			i+1,
			scoreStyle.Render(fmt.Sprintf("[%3d]", r.Score)),
			kindStyle.Render(fmt.Sprintf("%-10s", s.Kind)),
			titleStyle.Render(s.Title),
			mutedStyle.Render("("+s.ID+")"))
		if !verbose {
			continue
		}
		for _, m := range r.Matches {
			fmt.Fprintf(out, "      %s %s: %s\n", mutedStyle.Render(fmt.Sprintf("%3d", m.Score)), m.FieldLabel, m.Text)
		}
	}
}

func writeFormatted(out io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case "yaml":
		// Views only carry json tags; round trip so yaml keys match the API.
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q (use json or yaml)", format)
}
