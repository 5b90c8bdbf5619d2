package detect

import (
	"sort"
	"strings"
)

type techSignal struct {
	tech     string
	files    []string
	keywords []string
}

// Sinais por tecnologia: presença de arquivo gatilho OU substring em
// qualquer conteúdo. A busca global por substring é propositalmente
// imprecisa (um keyword dentro de comentário ainda casa).
var techSignals = []techSignal{
	// Bancos
	{"mongodb", nil, []string{"pymongo", "mongoose", "mongodb", "mongoclient"}},
	{"postgresql", nil, []string{"psycopg", "pg ", "postgresql", "postgres"}},
	{"mysql", nil, []string{"mysql", "mysqlclient", "mysql2"}},
	{"sqlite", nil, []string{"sqlite3", "sqlite"}},
	{"redis", nil, []string{"redis", "ioredis"}},
	{"firebase", nil, []string{"firebase", "firestore"}},
	{"supabase", nil, []string{"supabase"}},

	// ORMs
	{"sqlalchemy", nil, []string{"sqlalchemy"}},
	{"prisma", []string{"prisma/schema.prisma"}, []string{"prisma"}},
	{"sequelize", nil, []string{"sequelize"}},
	{"typeorm", nil, []string{"typeorm"}},

	// Auth
	{"jwt", nil, []string{"jsonwebtoken", "pyjwt", "jwt"}},
	{"oauth", nil, []string{"oauth", "passport"}},

	// Cloud
	{"aws", nil, []string{"boto3", "aws-sdk", "@aws-sdk"}},
	{"gcp", nil, []string{"google-cloud", "@google-cloud"}},
	{"docker", []string{"Dockerfile", "docker-compose.yml", "docker-compose.yaml"}, nil},

	// Testes
	{"pytest", nil, []string{"pytest"}},
	{"jest", nil, []string{"jest"}},
	{"mocha", nil, []string{"mocha"}},

	// CSS
	{"tailwindcss", []string{"tailwind.config.js", "tailwind.config.ts"}, []string{"tailwindcss"}},
	{"bootstrap", nil, []string{"bootstrap"}},

	// Build
	{"webpack", []string{"webpack.config.js"}, []string{"webpack"}},
	{"vite", []string{"vite.config.js", "vite.config.ts"}, []string{"vite"}},
}

// TechStack detecta tecnologias por arquivo gatilho ou keyword global.
// Saída ordenada e deduplicada.
func TechStack(files []string, contents map[string]string) []string {
	fileSet := map[string]bool{}
	for _, f := range files {
		fileSet[f] = true
	}

	var sb strings.Builder
	for _, f := range files {
		if c, ok := contents[f]; ok {
			sb.WriteString(c)
			sb.WriteString("\n")
		}
	}
	allContent := strings.ToLower(sb.String())

	detected := map[string]bool{}
	for _, sig := range techSignals {
		for _, f := range sig.files {
			if fileSet[f] {
				detected[sig.tech] = true
				break
			}
		}
		if detected[sig.tech] {
			continue
		}
		for _, kw := range sig.keywords {
			if strings.Contains(allContent, kw) {
				detected[sig.tech] = true
				break
			}
		}
	}

	out := make([]string, 0, len(detected))
	for tech := range detected {
		out = append(out, tech)
	}
	sort.Strings(out)
	return out
}
