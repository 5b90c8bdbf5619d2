package detect

import "strings"

type componentCategory struct {
	name     string
	keywords []string
}

// Categorias em ordem fixa de precedência: a primeira cujo keyword for
// substring do caminho (minúsculo) vence. Sobreposições ("model" vs
// "models", caminho com "service" e "controller") são resolvidas só
// pela ordem da tabela — comportamento observado, não "corrigir".
var componentCategories = []componentCategory{
	{"controllers", []string{"controller", "handler", "endpoint", "resource", "view"}},
	{"services", []string{"service", "manager", "helper", "util", "utils"}},
	{"models", []string{"model", "schema", "entity", "dto"}},
	{"routes", []string{"route", "router", "url", "urls"}},
	{"middleware", []string{"middleware", "interceptor", "guard"}},
	{"config", []string{"config", "settings", "env", "constant"}},
	{"tests", []string{"test", "spec", "__tests__"}},
	{"migrations", []string{"migration", "migrate"}},
}

// Components classifica cada arquivo em exatamente uma categoria
// (ou "other"), com no máximo limit arquivos por categoria.
func Components(files []string, limit int) map[string][]string {
	components := map[string][]string{}

	for _, f := range files {
		lower := strings.ToLower(f)
		categorized := false
		for _, cat := range componentCategories {
			for _, kw := range cat.keywords {
				if strings.Contains(lower, kw) {
					components[cat.name] = append(components[cat.name], f)
					categorized = true
					break
				}
			}
			if categorized {
				break
			}
		}
		if !categorized {
			components["other"] = append(components["other"], f)
		}
	}

	for k, v := range components {
		if len(v) > limit {
			components[k] = v[:limit]
		}
	}
	return components
}
