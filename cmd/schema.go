package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/anisan-cli/seriesdex/catalog"
	"github.com/anisan-cli/seriesdex/inline"
	"github.com/anisan-cli/seriesdex/series"
	"github.com/anisan-cli/seriesdex/title"
	"github.com/anisan-cli/seriesdex/util"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var schemaTargets = map[string]any{
	"catalog":    &catalog.Catalog{},
	"series":     map[string]*series.SeriesInfo{},
	"episodes":   &inline.Output{},
	"navigation": &inline.Navigation{},
	"search":     &inline.SearchOutput{},
	"parse":      &title.Match{},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringP("kind", "k", "catalog", "Document to describe: "+strings.Join(lo.Keys(schemaTargets), ", "))
	lo.Must0(schemaCmd.RegisterFlagCompletionFunc("kind", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Keys(schemaTargets), cobra.ShellCompDirectiveNoFileComp
	}))
	schemaCmd.SetOut(os.Stdout)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the catalog input or of a JSON output",
	Run: func(cmd *cobra.Command, args []string) {
		kind := lo.Must(cmd.Flags().GetString("kind"))
		target, ok := schemaTargets[kind]
		if !ok {
			handleErr(fmt.Errorf("unknown schema kind %s", kind))
		}

		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "series", "output", "item", "episode":
				return util.Capitalize(filepath.Base(t.PkgPath())) + name
			}
			return name
		}

		reflector.Mapper = optionSchema

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(reflector.Reflect(target)))
	},
}

// optionSchema describes mo.Option fields as their nullable inner type.
func optionSchema(t reflect.Type) *jsonschema.Schema {
	if t.PkgPath() != "github.com/samber/mo" || !strings.HasPrefix(t.Name(), "Option[") {
		return nil
	}

	get, ok := t.MethodByName("MustGet")
	if !ok {
		return nil
	}

	var inner string
	switch get.Type.Out(0).Kind() {
	case reflect.Int, reflect.Int64, reflect.Int32:
		inner = "integer"
	case reflect.String:
		inner = "string"
	case reflect.Bool:
		inner = "boolean"
	default:
		return nil
	}

	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{{Type: inner}, {Type: "null"}},
	}
}
