package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Sena-ops/repoxray/internal/analyzer"
	"github.com/Sena-ops/repoxray/internal/config"
	"github.com/Sena-ops/repoxray/internal/logging"
	"github.com/Sena-ops/repoxray/internal/model"
	"github.com/Sena-ops/repoxray/internal/tree"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var analyzeOutput string
var analyzeSave bool
var analyzeDebug bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [caminho]",
	Short: "Analisa a estrutura de um repositório local",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(analyzeDebug)
		logger := logging.Logger
		defer logger.Sync()

		path := args[0]
		cfg := config.Load()
		logger.Infof("Analisando diretório: %s", path)

		result, err := analyzer.Analyze(path, cfg)
		if err != nil {
			logger.Errorw("Erro ao analisar", "erro", err)
			os.Exit(1)
		}

		if analyzeSave {
			if err := saveJSON(filepath.Join(outputDir, "analysis.json"), result); err != nil {
				logger.Errorw("Erro ao salvar resultado", "erro", err)
				os.Exit(1)
			}
			logger.Infow("Resultado salvo", "arquivo", filepath.Join(outputDir, "analysis.json"))
		}

		switch strings.ToLower(analyzeOutput) {
		case "json":
			encoded, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				logger.Errorw("Erro ao gerar JSON", "erro", err)
				os.Exit(1)
			}
			fmt.Println(string(encoded))
			return

		case "yaml":
			encoded, err := yaml.Marshal(result)
			if err != nil {
				logger.Errorw("Erro ao gerar YAML", "erro", err)
				os.Exit(1)
			}
			fmt.Println(string(encoded))
			return

		case "markdown":
			fmt.Println(renderMarkdown(result, cfg))
			return
		}

		// Saída padrão terminal
		logger.Infof("✅ Resultado da análise:")
		fmt.Printf("- Frameworks: %s\n", strings.Join(result.Framework, ", "))
		fmt.Printf("- Arquitetura: %s\n", result.ArchitectureType)
		fmt.Printf("- Tech stack: %s\n", strings.Join(result.TechStack, ", "))
		fmt.Printf("- Arquivos: %d (%d linhas)\n", result.TotalFiles, result.TotalLines)
		fmt.Printf("- Endpoints: %d | Entry points: %d\n",
			len(result.APIEndpoints), len(result.EntryPoints))
		fmt.Println(tree.Render(tree.Tree(result.FolderStructure), cfg.TreeMaxLines))
	},
}

func renderMarkdown(result *model.AnalysisResult, cfg config.Config) string {
	var builder strings.Builder
	builder.WriteString("## 📋 Resultado da Análise\n\n")
	builder.WriteString(fmt.Sprintf("**Frameworks:** %s\n\n", strings.Join(result.Framework, ", ")))
	builder.WriteString(fmt.Sprintf("**Arquitetura:** %s\n\n", result.ArchitectureType))
	builder.WriteString(fmt.Sprintf("**Tech stack:** %s\n\n", strings.Join(result.TechStack, ", ")))

	builder.WriteString(fmt.Sprintf("### Linguagens (%d arquivos, %d linhas)\n", result.TotalFiles, result.TotalLines))
	langs := make([]string, 0, len(result.Languages))
	for l := range result.Languages {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	for _, l := range langs {
		builder.WriteString(fmt.Sprintf("- %s: %d linha(s)\n", l, result.Languages[l]))
	}
	builder.WriteString("\n")

	if len(result.APIEndpoints) > 0 {
		builder.WriteString("### Endpoints\n")
		for _, ep := range result.APIEndpoints {
			builder.WriteString(fmt.Sprintf("- `%s %s` (%s, %s)\n", ep.Method, ep.Route, ep.Framework, ep.File))
		}
		builder.WriteString("\n")
	}

	if len(result.EntryPoints) > 0 {
		builder.WriteString("### Entry points\n")
		for _, ep := range result.EntryPoints {
			builder.WriteString(fmt.Sprintf("- %s: %s\n", ep.File, ep.Reason))
		}
		builder.WriteString("\n")
	}

	builder.WriteString("### Estrutura\n```\n")
	builder.WriteString(tree.Render(tree.Tree(result.FolderStructure), cfg.TreeMaxLines))
	builder.WriteString("\n```\n")
	return builder.String()
}

func saveJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("criar diretório %s: %w", filepath.Dir(path), err)
	}
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("gerar JSON: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("escrever %s: %w", path, err)
	}
	return nil
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Formato da saída (json, yaml, markdown)")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Salva o resultado em .repoxray/analysis.json")
	analyzeCmd.Flags().BoolVar(&analyzeDebug, "debug", false, "Habilita logs em nível debug")
	rootCmd.AddCommand(analyzeCmd)
}
