package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sena-ops/repoxray/internal/config"
	"github.com/Sena-ops/repoxray/internal/lang"
)

// Diretórios sempre ignorados (vcs, caches de dependência, build, IDE).
var skipDirs = map[string]bool{
	"node_modules": true, ".git": true, "__pycache__": true,
	".venv": true, "venv": true, "env": true,
	".tox": true, ".mypy_cache": true, ".pytest_cache": true,
	"dist": true, "build": true, ".next": true, ".nuxt": true,
	"vendor": true, "target": true, ".idea": true, ".vscode": true,
	"coverage": true, ".cache": true, "egg-info": true,
}

var skipFiles = map[string]bool{
	".DS_Store": true, "Thumbs.db": true,
	".gitignore": true, ".gitattributes": true,
	"package-lock.json": true, "yarn.lock": true,
	"poetry.lock": true, "Pipfile.lock": true,
}

// Snapshot é o resultado imutável de uma travessia.
type Snapshot struct {
	Root       string
	Files      []string          // caminhos relativos, em ordem de travessia
	Contents   map[string]string // só arquivos legíveis abaixo do limite
	Languages  map[string]int    // linguagem → total de linhas (só linguagens de código)
	TotalFiles int
	TotalLines int
}

// Walk percorre a árvore a partir de root, podando os diretórios de skip
// antes de descer. Arquivos acima do limite de tamanho entram na lista,
// mas nunca no mapa de conteúdo. Erros por arquivo são engolidos;
// só a raiz ilegível é fatal.
func Walk(root string, cfg config.Config) (*Snapshot, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolver raiz %s: %w", root, err)
	}
	if info, err := os.Stat(absRoot); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("raiz inválida %s: %w", root, err)
	}

	snap := &Snapshot{
		Root:      absRoot,
		Contents:  map[string]string{},
		Languages: map[string]int{},
	}

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == absRoot {
				return walkErr
			}
			return nil // subárvore ilegível: segue
		}
		name := d.Name()

		if d.IsDir() {
			if path != absRoot && skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}
		if skipFiles[name] {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		snap.Files = append(snap.Files, rel)
		snap.TotalFiles++

		info, err := d.Info()
		if err != nil || info.Size() > cfg.MaxFileSize {
			return nil
		}

		l := lang.FromPath(name)
		if l == "" {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		content := strings.ToValidUTF8(string(raw), "�")

		snap.Contents[rel] = content
		lines := strings.Count(content, "\n") + 1
		snap.TotalLines += lines
		if !l.IsData() {
			snap.Languages[string(l)] += lines
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("percorrer %s: %w", root, err)
	}
	return snap, nil
}
