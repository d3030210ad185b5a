package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/anisan-cli/seriesdex/color"
	"github.com/anisan-cli/seriesdex/icon"
	"github.com/anisan-cli/seriesdex/inline"
	"github.com/anisan-cli/seriesdex/key"
	"github.com/anisan-cli/seriesdex/log"
	"github.com/anisan-cli/seriesdex/query"
	"github.com/anisan-cli/seriesdex/search"
	"github.com/anisan-cli/seriesdex/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolP("json", "j", false, "Print the result as JSON")
	searchCmd.Flags().BoolP("patterns", "p", false, "Only print the LIKE patterns built from the query")
	searchCmd.Flags().IntP("limit", "l", 20, "Maximum number of results")
	lo.Must0(viper.BindPFlag(key.SearchLimit, searchCmd.Flags().Lookup("limit")))

	searchCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}
	searchCmd.SetOut(os.Stdout)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog",
	Long: `Rank catalog content against a free-text query.

Designations such as S01E02, 1x02 or "season one episode two" anywhere in the query
match episodes directly; the remaining words are matched against titles, descriptions and tags.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text := strings.Join(args, " ")

		options := query.Options{
			MinTermLength:  viper.GetInt(key.SearchMinTermLength),
			MaxQueryLength: viper.GetInt(key.SearchMaxQueryLength),
		}

		if lo.Must(cmd.Flags().GetBool("patterns")) {
			for _, p := range search.BuildPatternsWith(text, options) {
				cmd.Println(p)
			}
			return
		}

		q := query.NormalizeWith(text, options)
		log.With(log.Fields{"tokens": q.Tokens, "terms": q.Terms}).Debugf("searching %q", q.NormalizedText)

		results := search.Rank(loadCatalog().Content, q)
		if limit := viper.GetInt(key.SearchLimit); limit > 0 && len(results) > limit {
			results = results[:limit]
		}

		if err := query.Remember(text); err != nil {
			log.Warn(err)
		}

		var suggestions []string
		if len(results) == 0 {
			suggestions = query.SuggestMany(text)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(inline.WriteJSON(cmd.OutOrStdout(), &inline.SearchOutput{
				Query:       q,
				Patterns:    search.BuildPatternsWith(text, options),
				Suggestions: lo.Ternary(suggestions == nil, []string{}, suggestions),
				Result:      results,
			}))
			return
		}

		if len(results) == 0 {
			cmd.Printf("%s nothing found for %s\n", icon.Get(icon.Search), style.Fg(color.Yellow)(text))
			if len(suggestions) > 0 {
				cmd.Printf("%s %s\n", style.Faint("maybe:"), strings.Join(suggestions, ", "))
			}
			return
		}

		for _, r := range results {
			cmd.Printf(
				"%s %s %s\n",
				style.Fg(color.Purple)(fmt.Sprintf("%3d", r.Score)),
				style.Bold(r.Item.Title),
				style.Faint(r.Item.ClaimID),
			)
			if r.Item.Description != "" {
				cmd.Println(style.Faint("    " + shortened(r.Item.Description, 4)))
			}
		}
	},
}
