package main

import (
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "listmate",
	Short: "AI-assisted property listing generation",
	Long: `listmate turns structured property input into polished listing copy:
guardrail-checked, validated, enriched with location context, generated by
an LLM, and formatted for publication.`,
	Version: Version,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
}
