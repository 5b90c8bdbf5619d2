package secscan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Sena-ops/repoxray/internal/config"
	"github.com/Sena-ops/repoxray/internal/model"
)

var commentPrefixes = []string{"#", "//", "<!--", "/*", "*"}

// Scan percorre a raiz de forma independente do analisador (skip-set
// próprio, limite de tamanho menor) e testa cada linha contra a tabela
// de padrões. Issues saem ordenadas por severidade (critical primeiro),
// preservando a ordem de descoberta como desempate.
func Scan(root string, cfg config.Config) ([]model.SecurityIssue, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolver raiz %s: %w", root, err)
	}
	if info, err := os.Stat(absRoot); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("raiz inválida %s: %w", root, err)
	}

	var issues []model.SecurityIssue

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == absRoot {
				return walkErr
			}
			return nil
		}
		if d.IsDir() {
			if path != absRoot && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if skipExtensions[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}

		info, err := d.Info()
		if err != nil || info.Size() > cfg.ScanMaxFileSize {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		raw, err := os.ReadFile(path)
		if err != nil {
			return nil
		}

		issues = append(issues, scanLines(rel, splitLines(string(raw)))...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("percorrer %s: %w", root, err)
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Severity.Rank() < issues[j].Severity.Rank()
	})
	return issues, nil
}

// scanLines testa cada linha contra a tabela ordenada; o primeiro
// padrão que casar vence (uma issue por linha). Linhas com cara de
// comentário são puladas — exceto em arquivos .env, sempre escaneados.
func scanLines(relPath string, lines []string) []model.SecurityIssue {
	var issues []model.SecurityIssue

	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if isComment(stripped) && !strings.HasPrefix(relPath, ".env") {
			continue
		}

		for _, p := range secretPatterns {
			match := p.re.FindString(line)
			if match == "" {
				continue
			}
			issues = append(issues, model.SecurityIssue{
				Type:         p.name,
				File:         relPath,
				Line:         i + 1,
				Severity:     p.severity,
				Status:       model.StatusDetected,
				Snippet:      maskSecret(match, 4),
				OriginalLine: strings.TrimRight(line, " \t\r\n"),
			})
			break
		}
	}
	return issues
}

func isComment(stripped string) bool {
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(stripped, prefix) {
			return true
		}
	}
	return false
}

// maskSecret revela os primeiros visible caracteres e substitui o
// resto por asteriscos; valores curtos são mascarados por inteiro.
func maskSecret(value string, visible int) string {
	if len(value) <= visible+4 {
		return strings.Repeat("*", len(value))
	}
	return value[:visible] + strings.Repeat("*", len(value)-visible)
}

// splitLines separa preservando a numeração 1-based; o \n final não
// gera linha vazia extra.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
