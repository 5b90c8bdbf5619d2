package graph

import (
	"path/filepath"
	"sort"
)

// Build monta o grafo de imports por arquivo e corta a projeção nos
// `limit` arquivos com mais arestas de saída (empates preservam a
// ordem de travessia). O corte é um limite de armazenamento: análises
// de ciclo/arquivo-não-usado feitas sobre o grafo cortado são
// aproximadas quando mais de `limit` arquivos têm arestas.
func Build(files []string, contents map[string]string, limit int) map[string][]string {
	edges := map[string][]string{}
	var order []string

	for _, f := range files {
		content, ok := contents[f]
		if !ok {
			continue
		}
		ex := ForExtension(filepath.Ext(f))
		if ex == nil {
			continue
		}
		targets := ex.Extract(f, content)
		if len(targets) == 0 {
			continue
		}
		edges[f] = targets
		order = append(order, f)
	}

	if len(order) > limit {
		sort.SliceStable(order, func(i, j int) bool {
			return len(edges[order[i]]) > len(edges[order[j]])
		})
		order = order[:limit]
	}

	out := make(map[string][]string, len(order))
	for _, f := range order {
		out[f] = edges[f]
	}
	return out
}
