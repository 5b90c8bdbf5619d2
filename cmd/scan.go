package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sena-ops/repoxray/internal/config"
	"github.com/Sena-ops/repoxray/internal/logging"
	"github.com/Sena-ops/repoxray/internal/model"
	"github.com/Sena-ops/repoxray/internal/sarif"
	"github.com/Sena-ops/repoxray/internal/secscan"
	"github.com/spf13/cobra"
)

var scanOutput string
var scanSave bool
var scanDebug bool

var scanCmd = &cobra.Command{
	Use:   "scan [caminho]",
	Short: "Escaneia um repositório em busca de segredos embutidos",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(scanDebug)
		logger := logging.Logger
		defer logger.Sync()

		path := args[0]
		cfg := config.Load()
		logger.Infof("Escaneando segredos em: %s", path)

		issues, err := secscan.Scan(path, cfg)
		if err != nil {
			logger.Errorw("Erro ao escanear", "erro", err)
			os.Exit(1)
		}
		result := model.NewScanResult(issues, cfg.IssuesCap)
		logger.Infof("Scan encontrou %d issue(s)", result.TotalIssues)

		if scanSave {
			outPath := filepath.Join(outputDir, "security-results.json")
			if err := saveJSON(outPath, result); err != nil {
				logger.Errorw("Erro ao salvar resultados", "erro", err)
				os.Exit(1)
			}
			logger.Infow("Resultado salvo com sucesso", "arquivo", outPath)
		}

		switch strings.ToLower(scanOutput) {
		case "json":
			encoded, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				logger.Errorw("Erro ao gerar JSON", "erro", err)
				os.Exit(1)
			}
			fmt.Println(string(encoded))
			return

		case "sarif":
			outPath, err := sarif.Export(result.Issues, outputDir, "security-results", toolName, toolVersion)
			if err != nil {
				logger.Errorw("Erro ao gerar SARIF", "erro", err)
				os.Exit(1)
			}
			logger.Infow("SARIF salvo com sucesso", "arquivo", outPath)
			return
		}

		// Saída padrão terminal
		logger.Infof("✅ Resultado do Scan:")
		for _, is := range result.Issues {
			fmt.Printf("- [%s] %s %s:%d\n    • %s\n",
				strings.ToUpper(string(is.Severity)), is.Type, is.File, is.Line, is.Snippet)
		}
		if result.TotalIssues > len(result.Issues) {
			fmt.Printf("... e mais %d issue(s) (corte em %d)\n",
				result.TotalIssues-len(result.Issues), cfg.IssuesCap)
		}
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "Formato da saída (json, sarif)")
	scanCmd.Flags().BoolVar(&scanSave, "save", false, "Salva o resultado em .repoxray/security-results.json")
	scanCmd.Flags().BoolVar(&scanDebug, "debug", false, "Habilita logs em nível debug")
	rootCmd.AddCommand(scanCmd)
}
