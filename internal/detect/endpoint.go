package detect

import (
	"regexp"
	"strings"

	"github.com/Sena-ops/repoxray/internal/lang"
	"github.com/Sena-ops/repoxray/internal/model"
)

type apiPattern struct {
	re        *regexp.Regexp
	framework string
	langs     map[lang.Language]bool
	// explicitMethod indica que o grupo 1 do match é o método HTTP
	// (grupo 2 é a rota); caso contrário o grupo 1 é a rota e o método
	// default é GET, com lookback por methods=[...].
	explicitMethod bool
}

var apiPatterns = []apiPattern{
	{
		re:        regexp.MustCompile(`@\w+\.route\(["'](.+?)["'].*?\)\s*\ndef\s+\w+`),
		framework: "Flask",
		langs:     map[lang.Language]bool{lang.Python: true},
	},
	{
		re:        regexp.MustCompile(`path\(["'](.+?)["'].*?,\s*\w+`),
		framework: "Django",
		langs:     map[lang.Language]bool{lang.Python: true},
	},
	{
		re:             regexp.MustCompile(`(?:app|router)\.(get|post|put|delete|patch)\(["'](.+?)["']`),
		framework:      "Express",
		langs:          map[lang.Language]bool{lang.JavaScript: true, lang.TypeScript: true},
		explicitMethod: true,
	},
	{
		re:             regexp.MustCompile(`@\w+\.(get|post|put|delete|patch)\(["'](.+?)["']`),
		framework:      "FastAPI",
		langs:          map[lang.Language]bool{lang.Python: true},
		explicitMethod: true,
	},
}

var methodsListRe = regexp.MustCompile(`methods=\[(.+?)\]`)

// APIEndpoints extrai rotas por padrões de framework. Para rotas em
// decorator sem método explícito, um lookback de 200 caracteres antes
// do match procura uma lista methods=[...] e sobrescreve o GET default.
func APIEndpoints(files []string, contents map[string]string) []model.APIEndpoint {
	var endpoints []model.APIEndpoint

	for _, f := range files {
		content, ok := contents[f]
		if !ok {
			continue
		}
		l := lang.FromPath(f)

		for _, p := range apiPatterns {
			if !p.langs[l] {
				continue
			}
			for _, m := range p.re.FindAllStringSubmatchIndex(content, -1) {
				var method, route string
				if p.explicitMethod {
					method = strings.ToUpper(content[m[2]:m[3]])
					route = content[m[4]:m[5]]
				} else {
					route = content[m[2]:m[3]]
					method = "GET"
					preceding := content[:m[0]]
					if len(preceding) > 200 {
						preceding = preceding[len(preceding)-200:]
					}
					if strings.Contains(preceding, "methods=") {
						if mm := methodsListRe.FindStringSubmatch(preceding); mm != nil {
							method = strings.TrimSpace(strings.NewReplacer("'", "", `"`, "").Replace(mm[1]))
						}
					}
				}

				endpoints = append(endpoints, model.APIEndpoint{
					Method:    method,
					Route:     route,
					File:      f,
					Framework: p.framework,
				})
			}
		}
	}
	return endpoints
}
