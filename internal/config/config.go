package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config concentra os limites ajustáveis do motor de análise.
// As tabelas de regras e os conjuntos de skip NÃO ficam aqui:
// são constantes de pacote, fixas por ordem de precedência.
type Config struct {
	// Análise
	MaxFileSize  int64 // bytes; arquivos maiores entram na lista, mas sem conteúdo
	TreeMaxDepth int
	TreeMaxLines int
	FilesCap     int // corte da lista de arquivos no resultado armazenado
	GraphCap     int // nós do grafo de imports no resultado armazenado
	ComponentCap int // arquivos por categoria de componente

	// Scanner de segurança
	ScanMaxFileSize int64
	IssuesCap       int // issues no resultado armazenado
}

// Default retorna os limites padrão do motor.
func Default() Config {
	return Config{
		MaxFileSize:     1 * 1024 * 1024,
		TreeMaxDepth:    4,
		TreeMaxLines:    100,
		FilesCap:        500,
		GraphCap:        100,
		ComponentCap:    50,
		ScanMaxFileSize: 512 * 1024,
		IssuesCap:       200,
	}
}

// Load carrega os limites padrão e aplica overrides via variáveis de
// ambiente REPOXRAY_*. Um .env no diretório corrente é lido se existir.
func Load() Config {
	_ = godotenv.Load()

	cfg := Default()
	cfg.MaxFileSize = envInt64("REPOXRAY_MAX_FILE_SIZE", cfg.MaxFileSize)
	cfg.TreeMaxDepth = envInt("REPOXRAY_TREE_MAX_DEPTH", cfg.TreeMaxDepth)
	cfg.TreeMaxLines = envInt("REPOXRAY_TREE_MAX_LINES", cfg.TreeMaxLines)
	cfg.FilesCap = envInt("REPOXRAY_FILES_CAP", cfg.FilesCap)
	cfg.GraphCap = envInt("REPOXRAY_GRAPH_CAP", cfg.GraphCap)
	cfg.ComponentCap = envInt("REPOXRAY_COMPONENT_CAP", cfg.ComponentCap)
	cfg.ScanMaxFileSize = envInt64("REPOXRAY_SCAN_MAX_FILE_SIZE", cfg.ScanMaxFileSize)
	cfg.IssuesCap = envInt("REPOXRAY_ISSUES_CAP", cfg.IssuesCap)
	return cfg
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func envInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
