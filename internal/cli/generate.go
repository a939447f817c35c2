package cli

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	schemagen "github.com/flowdsl/schemagen"
	"github.com/flowdsl/schemagen/catalog"
)

var (
	inputPath    string
	outputPath   string
	camelCase    bool
	noAdditional bool
	banNames     []string
	schemaID     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the JSON Schema file for a catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.LoadFile(inputPath)
		if err != nil {
			return errors.Wrapf(err, "load catalog %s", inputPath)
		}

		opt := schemagen.Options{
			DisallowAdditional: noAdditional,
			SchemaID:           schemaID,
		}
		if camelCase {
			opt.CaseMode = schemagen.CaseCamel
		}
		if len(banNames) > 0 {
			opt.Banned = catalog.BanNames(banNames...)
		}

		root, err := schemagen.Generate(cat, opt)
		if err != nil {
			return err
		}

		wrote, err := schemagen.WriteFile(outputPath, root)
		if err != nil {
			return err
		}
		if wrote {
			logrus.Infof("wrote %s", outputPath)
		} else {
			logrus.Infof("%s is up to date", outputPath)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&inputPath, "input", "i", "catalog.yaml", "path to the catalog document")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "schema.json", "path to the schema artifact")
	generateCmd.Flags().BoolVar(&camelCase, "camel", false, "emit compact (camelCase) property keys")
	generateCmd.Flags().BoolVar(&noAdditional, "no-additional", false, "reject properties not listed in a definition")
	generateCmd.Flags().StringArrayVar(&banNames, "ban", nil, "type name to exclude from generation (repeatable)")
	generateCmd.Flags().StringVar(&schemaID, "schema-id", "", "override the emitted $schema dialect id")
	rootCmd.AddCommand(generateCmd)
}
