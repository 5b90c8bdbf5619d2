package walker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Sena-ops/repoxray/internal/config"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
}

func TestWalkBasics(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.py", "print('oi')\nprint('tchau')\n")
	writeFile(t, root, "models/user.py", "class User:\n    pass\n")
	writeFile(t, root, "README.md", "# projeto\n")
	writeFile(t, root, "node_modules/lib/index.js", "module.exports = {}\n")
	writeFile(t, root, ".git/config", "[core]\n")
	writeFile(t, root, "package-lock.json", "{}\n")
	writeFile(t, root, "binario.exe", "\x00\x01\x02")

	snap, err := Walk(root, config.Default())
	require.NoError(t, err)

	require.Equal(t, snap.TotalFiles, len(snap.Files))
	for _, f := range snap.Files {
		for _, seg := range strings.Split(f, "/") {
			require.NotEqual(t, "node_modules", seg)
			require.NotEqual(t, ".git", seg)
		}
		require.NotEqual(t, "package-lock.json", f)
	}

	// total_lines = soma das contagens por arquivo lido
	sum := 0
	for _, c := range snap.Contents {
		sum += strings.Count(c, "\n") + 1
	}
	require.Equal(t, sum, snap.TotalLines)

	// markdown conta no total, mas não no breakdown por linguagem
	require.Contains(t, snap.Contents, "README.md")
	require.NotContains(t, snap.Languages, "markdown")
	require.Equal(t, 6, snap.Languages["python"])

	// extensão desconhecida: listado, sem conteúdo
	require.Contains(t, snap.Files, "binario.exe")
	require.NotContains(t, snap.Contents, "binario.exe")
}

func TestWalkSizeCap(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.MaxFileSize = 64

	atCap := strings.Repeat("a", 63) + "\n"
	writeFile(t, root, "no_limite.py", atCap) // exatamente 64 bytes
	writeFile(t, root, "acima.py", atCap+"b") // 65 bytes

	snap, err := Walk(root, cfg)
	require.NoError(t, err)

	require.Contains(t, snap.Contents, "no_limite.py")
	require.Contains(t, snap.Files, "acima.py")
	require.NotContains(t, snap.Contents, "acima.py")
}

func TestWalkInvalidRoot(t *testing.T) {
	_, err := Walk(filepath.Join(t.TempDir(), "nao-existe"), config.Default())
	require.Error(t, err)
}

func TestWalkInvalidUTF8NotFatal(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sujo.py", "x = 1\n\xff\xfe\n")

	snap, err := Walk(root, config.Default())
	require.NoError(t, err)
	require.Contains(t, snap.Contents, "sujo.py")
	require.Contains(t, snap.Contents["sujo.py"], "�")
}
