package cmd

import (
	"github.com/spf13/cobra"
)

const (
	toolName    = "repoxray"
	toolVersion = "0.1.0"
	outputDir   = ".repoxray"
)

var rootCmd = &cobra.Command{
	Use:   "repoxray",
	Short: "RepoXray - Análise estática de codebase & Scanner de segredos",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
