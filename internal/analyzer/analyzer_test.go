package analyzer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Sena-ops/repoxray/internal/config"
	"github.com/Sena-ops/repoxray/internal/model"
	"github.com/Sena-ops/repoxray/internal/tree"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
}

func TestAnalyzeFlaskScenario(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "requirements.txt", "flask==3.0\n")
	writeFile(t, root, "app.py", "from flask import Flask\napp = Flask(__name__)\n\n@app.route('/ping')\ndef ping():\n    return 'pong'\n\napp.run(debug=True)\n")
	writeFile(t, root, "models/user.py", "class User:\n    pass\n")
	writeFile(t, root, "node_modules/x/y.js", "ignorado\n")

	res, err := Analyze(root, config.Default())
	require.NoError(t, err)

	require.Contains(t, res.Framework, "Flask")
	require.Contains(t, res.EntryPoints,
		model.EntryPoint{File: "app.py", Reason: "Flask app.run()"})
	require.Contains(t, res.Components["models"], "models/user.py")

	require.Len(t, res.APIEndpoints, 1)
	require.Equal(t, "/ping", res.APIEndpoints[0].Route)
	require.Equal(t, "Flask", res.APIEndpoints[0].Framework)

	// invariantes de totais
	require.Equal(t, res.TotalFiles, len(res.Files))

	// nenhum caminho de saída contém diretório de skip
	for _, f := range res.Files {
		require.NotContains(t, f, "node_modules")
	}
	for _, paths := range res.Components {
		for _, p := range paths {
			require.NotContains(t, p, "node_modules")
		}
	}

	require.NotEmpty(t, res.ID)
	require.Contains(t, res.Languages, "python")
	require.Len(t, res.Languages, 1) // requirements.txt é dado, não código
}

func TestAnalyzeFilesCap(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.FilesCap = 5

	for i := 0; i < 10; i++ {
		writeFile(t, root, filepath.Join("src", strings.Repeat("f", i+1)+".py"), "x = 1\n")
	}

	res, err := Analyze(root, cfg)
	require.NoError(t, err)
	require.Equal(t, 10, res.TotalFiles)
	require.Len(t, res.Files, 5)
}

func TestAnalyzeInvalidRoot(t *testing.T) {
	_, err := Analyze(filepath.Join(t.TempDir(), "nada"), config.Default())
	require.Error(t, err)
}

func TestAnalyzeImportGraphAndTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/b.py", "import os\n")
	writeFile(t, root, "a/c/d.py", "import sys\n")

	cfg := config.Default()
	cfg.TreeMaxDepth = 2

	res, err := Analyze(root, cfg)
	require.NoError(t, err)

	require.Equal(t, []string{"os"}, res.DependencyGraph["a/b.py"])

	a, ok := res.FolderStructure["a"].(tree.Tree)
	require.True(t, ok)
	require.Equal(t, "file", a["b.py"])
	c, ok := a["c"].(tree.Tree)
	require.True(t, ok)
	require.Empty(t, c) // além da profundidade 2
}
