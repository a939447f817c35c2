package cli

import (
	"github.com/spf13/cobra"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "schemagen",
	Short: "Derive the flow DSL JSON Schema from a type-metadata catalog",
}

func Execute() error {
	return rootCmd.Execute()
}
