package tree

import "strings"

// Tree é a estrutura aninhada de pastas: cada valor é outro nó
// (diretório) ou o marcador "file" (folha).
type Tree map[string]any

const fileLeaf = "file"

// Build monta a árvore de pastas a partir dos caminhos relativos.
// Componentes além de maxDepth não são inseridos — o aninhamento
// profundo é truncado no ancestral.
func Build(files []string, maxDepth int) Tree {
	root := Tree{}
	for _, f := range files {
		parts := strings.Split(f, "/")
		node := root
		for i, part := range parts {
			if i >= maxDepth {
				break
			}
			if i == len(parts)-1 {
				node[part] = fileLeaf
				continue
			}
			child, ok := node[part].(Tree)
			if !ok {
				child = Tree{}
				node[part] = child
			}
			node = child
		}
	}
	return root
}
