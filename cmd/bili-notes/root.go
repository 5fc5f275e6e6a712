package main

import (
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.yaml"

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "bili-notes <url>",
		Short:         "Generate notes from a Bilibili video's subtitles",
		Long:          "Downloads a video and its subtitles with you-get, extracts the subtitle text and asks a language model for structured notes.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			missingOK := !cmd.Flags().Changed("config")
			return runNotes(cmd, args[0], configFlag, missingOK)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", defaultConfigPath, "Configuration file path (YAML or TOML)")

	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
