package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/anisan-cli/seriesdex/icon"
	"github.com/anisan-cli/seriesdex/internal/cache"
	"github.com/anisan-cli/seriesdex/query"
	"github.com/anisan-cli/seriesdex/util"
	"github.com/anisan-cli/seriesdex/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

func removing(location func() string) func() error {
	return func() error {
		if err := util.Delete(location()); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
}

var clearTargets = []clearTarget{
	{"series cache", "cache", mo.Some("c"), removing(where.Series)},
	{"expired series cache", "expired", mo.Some("e"), func() error {
		_, err := cache.CollectGarbage()
		return err
	}},
	{"watch history", "history", mo.Some("s"), removing(where.History)},
	{"query history", "queries", mo.Some("q"), query.Forget},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear caches and histories",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			erase()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
