package detect

import (
	"path"
	"strings"
)

type archetype struct {
	name     string
	required []string // diretórios obrigatórios: todos presentes → match imediato
	dirs     []string // diretórios associados
	files    []string // arquivos indicadores
}

// Lista ordenada de arquétipos. A ordem é precedência: o primeiro que
// casar vence; "Monolithic" é o fallback.
var archetypes = []archetype{
	{
		name:     "MVC",
		required: []string{"model", "view", "controller"},
		dirs:     []string{"models", "views", "controllers", "templates"},
	},
	{
		name:     "MVVM",
		required: []string{"model", "view", "viewmodel"},
		dirs:     []string{"models", "views", "viewmodels"},
	},
	{
		name:  "Microservices",
		dirs:  []string{"services", "gateway", "api-gateway"},
		files: []string{"docker-compose.yml", "docker-compose.yaml"},
	},
	{
		name: "Layered / N-Tier",
		dirs: []string{"controllers", "services", "repositories", "models"},
	},
	{
		name: "Component-Based (React/Vue)",
		dirs: []string{"components", "pages", "hooks", "store", "context"},
	},
}

const archMonolithic = "Monolithic"

// Architecture classifica o padrão arquitetural pela estrutura de pastas.
func Architecture(files []string) string {
	dirNames := map[string]bool{}
	baseNames := map[string]bool{}
	for _, f := range files {
		parts := strings.Split(f, "/")
		for _, p := range parts[:len(parts)-1] {
			dirNames[strings.ToLower(p)] = true
		}
		baseNames[path.Base(f)] = true
	}

	for _, a := range archetypes {
		if len(a.required) > 0 {
			all := true
			for _, r := range a.required {
				if !dirNames[r] {
					all = false
					break
				}
			}
			if all {
				return a.name
			}
		}

		dirHits := 0
		for _, d := range a.dirs {
			if dirNames[d] {
				dirHits++
			}
		}
		fileHits := 0
		for _, f := range a.files {
			if baseNames[f] {
				fileHits++
			}
		}

		if dirHits >= 3 {
			return a.name
		}
		if dirHits >= 2 && fileHits >= 1 {
			return a.name
		}
	}

	return archMonolithic
}
