package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Sena-ops/repoxray/internal/logging"
	"github.com/Sena-ops/repoxray/internal/model"
	"github.com/Sena-ops/repoxray/internal/secscan"
	"github.com/spf13/cobra"
)

var resolveIssuesFile string
var resolveAction string
var resolveIndices string
var resolveDebug bool

// Chamadas mutantes (auto_remove) contra a mesma raiz precisam ser
// serializadas pelo chamador; o motor não sincroniza escritas.
var resolveCmd = &cobra.Command{
	Use:   "resolve [caminho]",
	Short: "Resolve issues de segurança (auto_remove, ignore, mask)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(resolveDebug)
		logger := logging.Logger
		defer logger.Sync()

		path := args[0]

		raw, err := os.ReadFile(resolveIssuesFile)
		if err != nil {
			logger.Errorw("Erro ao ler arquivo de issues", "erro", err)
			os.Exit(1)
		}
		var result model.ScanResult
		if err := json.Unmarshal(raw, &result); err != nil {
			logger.Errorw("Erro ao fazer parse das issues", "erro", err)
			os.Exit(1)
		}

		switch strings.ToLower(resolveAction) {
		case "auto_remove":
			removed := secscan.AutoRemove(path, result.Issues)
			result.Resolved = removed
			logger.Infof("✅ Removidos %d segredo(s)", removed)

		case "ignore":
			indices, err := parseIndices(resolveIndices)
			if err != nil {
				logger.Errorw("Índices inválidos", "erro", err)
				os.Exit(1)
			}
			count := secscan.Ignore(result.Issues, indices)
			logger.Infof("✅ Ignoradas %d issue(s)", count)

		case "mask":
			count := secscan.Mask(result.Issues)
			logger.Infof("✅ Mascaradas %d issue(s)", count)

		default:
			logger.Errorf("Ação inválida %q: use auto_remove, ignore ou mask", resolveAction)
			os.Exit(1)
		}

		if err := saveJSON(resolveIssuesFile, &result); err != nil {
			logger.Errorw("Erro ao reescrever issues", "erro", err)
			os.Exit(1)
		}
	},
}

func parseIndices(s string) ([]int, error) {
	var indices []int
	for _, part := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		idx, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, fmt.Errorf("índice %q: %w", trimmed, err)
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveIssuesFile, "issues", "i", ".repoxray/security-results.json", "Arquivo de issues gerado por scan --save")
	resolveCmd.Flags().StringVarP(&resolveAction, "action", "a", "", "Ação de resolução (auto_remove, ignore, mask)")
	resolveCmd.Flags().StringVar(&resolveIndices, "indices", "", "Índices das issues para ignore (ex: 0,2,5)")
	resolveCmd.Flags().BoolVar(&resolveDebug, "debug", false, "Habilita logs em nível debug")
	_ = resolveCmd.MarkFlagRequired("action")
	rootCmd.AddCommand(resolveCmd)
}
