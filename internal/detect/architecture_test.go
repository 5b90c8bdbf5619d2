package detect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArchitecture(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		expected string
	}{
		{
			"mvc_por_required_set",
			[]string{"model/a.py", "view/b.py", "controller/c.py"},
			"MVC",
		},
		{
			"mvc_por_tres_diretorios",
			[]string{"models/a.py", "views/b.py", "controllers/c.py"},
			"MVC",
		},
		{
			"layered_por_tres_diretorios",
			[]string{
				"controllers/a.py", "services/b.py",
				"repositories/c.py", "models/d.py",
			},
			// "services" sozinho não fecha Microservices (1 dir, sem
			// docker-compose); Layered fecha com 4 dirs associados
			"Layered / N-Tier",
		},
		{
			"microservices_com_compose",
			[]string{"services/a.py", "gateway/b.py", "docker-compose.yml"},
			"Microservices",
		},
		{
			"component_based",
			[]string{"components/App.jsx", "pages/Home.jsx", "hooks/use.js"},
			"Component-Based (React/Vue)",
		},
		{
			"fallback_monolitico",
			[]string{"a.py", "b.py", "src/c.py"},
			"Monolithic",
		},
		{
			"mvc_vence_layered_pela_ordem",
			// required de MVC completo E dirs de Layered presentes:
			// MVC vem antes na tabela
			[]string{
				"model/a.py", "view/b.py", "controller/c.py",
				"controllers/d.py", "services/e.py", "repositories/f.py",
			},
			"MVC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Architecture(tt.files))
		})
	}
}
