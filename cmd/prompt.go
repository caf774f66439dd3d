package cmd

import (
	"fmt"

	"github.com/MyCarrier-DevOps/go-commitlint/internal/output"

	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the commit authoring prompt schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := checkOutputFormat(); err != nil {
			return err
		}
		cfg, err := loadConfig(workDir(openRepository()))
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		schema := output.BuildPromptSchema(cfg)
		if flagOutput == "json" {
			return output.WriteJSON(cmd.OutOrStdout(), schema)
		}
		return output.WritePrompt(cmd.OutOrStdout(), schema)
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
}
