package tree

import (
	"sort"
	"strings"
)

// Render converte a árvore em texto indentado com conectores,
// diretórios antes de arquivos, ordem alfabética dentro de cada grupo.
// A saída é cortada em maxLines com um marcador explícito.
func Render(t Tree, maxLines int) string {
	var lines []string
	renderInto(t, "", maxLines, &lines)
	return strings.Join(lines, "\n")
}

func renderInto(t Tree, prefix string, maxLines int, lines *[]string) {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		iFile := t[names[i]] == fileLeaf
		jFile := t[names[j]] == fileLeaf
		if iFile != jFile {
			return !iFile // diretórios primeiro
		}
		return names[i] < names[j]
	})

	for i, name := range names {
		if len(*lines) >= maxLines {
			*lines = append(*lines, prefix+"... (truncated)")
			return
		}

		connector := "├── "
		extension := "│   "
		if i == len(names)-1 {
			connector = "└── "
			extension = "    "
		}

		if child, ok := t[name].(Tree); ok {
			*lines = append(*lines, prefix+connector+name+"/")
			renderInto(child, prefix+extension, maxLines, lines)
		} else {
			*lines = append(*lines, prefix+connector+name)
		}
	}
}
