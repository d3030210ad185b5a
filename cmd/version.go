package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/anisan-cli/seriesdex/color"
	"github.com/anisan-cli/seriesdex/constant"
	"github.com/anisan-cli/seriesdex/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version")
}

var versionTemplate = template.Must(template.New("version").Funcs(map[string]any{
	"faint":   style.Faint,
	"bold":    style.Bold,
	"magenta": style.Fg(color.Purple),
}).Parse(`{{ magenta "▇▇▇" }} {{ magenta .App }}

  {{ faint "Version" }}         {{ bold .Version }}
  {{ faint "Catalog format" }}  {{ bold .CatalogFormat }}
  {{ faint "Git Commit" }}      {{ bold .Revision }}
  {{ faint "Build Date" }}      {{ bold .BuiltAt }}
  {{ faint "Built By" }}        {{ bold .BuiltBy }}
  {{ faint "Platform" }}        {{ bold .OS }}/{{ bold .Arch }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), struct {
			App, Version, CatalogFormat, Revision, BuiltAt, BuiltBy, OS, Arch string
		}{
			App:           constant.Seriesdex,
			Version:       constant.Version,
			CatalogFormat: constant.CatalogFormat,
			Revision:      constant.Revision,
			BuiltAt:       strings.TrimSpace(constant.BuiltAt),
			BuiltBy:       constant.BuiltBy,
			OS:            runtime.GOOS,
			Arch:          runtime.GOARCH,
		}))
	},
}
