package detect

import (
	"regexp"
	"strings"
)

// Grupo de regras por ecossistema: manifestos de dependência + tabela
// palavra-chave → nome canônico. A ordem dos grupos e das palavras é
// fixa e determina a ordem de inserção do resultado.
type frameworkRule struct {
	files    []string
	keywords []keywordPair
}

type keywordPair struct {
	keyword string
	name    string
}

var frameworkRules = []frameworkRule{
	// Python
	{
		files: []string{"requirements.txt", "Pipfile", "pyproject.toml", "setup.py"},
		keywords: []keywordPair{
			{"flask", "Flask"}, {"django", "Django"}, {"fastapi", "FastAPI"},
			{"tornado", "Tornado"}, {"bottle", "Bottle"}, {"pyramid", "Pyramid"},
			{"streamlit", "Streamlit"}, {"gradio", "Gradio"},
		},
	},
	// JavaScript / TypeScript
	{
		files: []string{"package.json"},
		keywords: []keywordPair{
			{"react", "React"}, {"next", "Next.js"}, {"vue", "Vue.js"},
			{"nuxt", "Nuxt.js"}, {"angular", "Angular"}, {"svelte", "Svelte"},
			{"express", "Express.js"}, {"nestjs", "NestJS"}, {"koa", "Koa"},
			{"fastify", "Fastify"}, {"gatsby", "Gatsby"}, {"remix", "Remix"},
			{"electron", "Electron"},
		},
	},
	// Java
	{
		files: []string{"pom.xml", "build.gradle", "build.gradle.kts"},
		keywords: []keywordPair{
			{"spring", "Spring Boot"}, {"quarkus", "Quarkus"},
		},
	},
	// Ruby
	{
		files: []string{"Gemfile"},
		keywords: []keywordPair{
			{"rails", "Ruby on Rails"}, {"sinatra", "Sinatra"},
		},
	},
	// Go
	{
		files: []string{"go.mod"},
		keywords: []keywordPair{
			{"gin", "Gin"}, {"echo", "Echo"}, {"fiber", "Fiber"},
		},
	},
	// PHP
	{
		files: []string{"composer.json"},
		keywords: []keywordPair{
			{"laravel", "Laravel"}, {"symfony", "Symfony"},
		},
	},
}

var (
	pyImportRes = buildImportRes(frameworkRules[0].keywords, func(kw string) string {
		return `(?m)^\s*(?:import|from)\s+` + kw
	})
	jsImportRes = buildImportRes(frameworkRules[1].keywords, func(kw string) string {
		return `require\(['"]` + kw + `|from\s+['"]` + kw
	})
)

func buildImportRes(pairs []keywordPair, pattern func(kw string) string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(pairs))
	for i, p := range pairs {
		res[i] = regexp.MustCompile(pattern(regexp.QuoteMeta(p.keyword)))
	}
	return res
}

// Frameworks detecta frameworks em duas passadas: manifestos de
// dependência e depois imports no código. Resultado deduplicado,
// em ordem de inserção; ["Unknown"] se nada casar.
func Frameworks(files []string, contents map[string]string) []string {
	var detected []string
	seen := map[string]bool{}
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			detected = append(detected, name)
		}
	}

	// Passada 1: manifestos de dependência
	for _, rule := range frameworkRules {
		for _, depFile := range rule.files {
			content, ok := contents[depFile]
			if !ok {
				continue
			}
			lower := strings.ToLower(content)
			for _, kp := range rule.keywords {
				if strings.Contains(lower, kp.keyword) {
					add(kp.name)
				}
			}
		}
	}

	// Passada 2: imports no código-fonte
	for _, path := range files {
		content, ok := contents[path]
		if !ok {
			continue
		}
		switch {
		case strings.HasSuffix(path, ".py"):
			for i, re := range pyImportRes {
				if re.MatchString(content) {
					add(frameworkRules[0].keywords[i].name)
				}
			}
		case strings.HasSuffix(path, ".js"), strings.HasSuffix(path, ".jsx"),
			strings.HasSuffix(path, ".ts"), strings.HasSuffix(path, ".tsx"):
			for i, re := range jsImportRes {
				if re.MatchString(content) {
					add(frameworkRules[1].keywords[i].name)
				}
			}
		}
	}

	if len(detected) == 0 {
		return []string{"Unknown"}
	}
	return detected
}
