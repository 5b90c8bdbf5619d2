package graph

import (
	"go/parser"
	"go/token"
	"regexp"
	"strconv"
	"strings"
)

// Extractor extrai os alvos de import de um arquivo. Implementações
// são selecionadas por extensão; a extração por regex é o fallback
// universal, inclusive para a linguagem com parse estrutural.
type Extractor interface {
	Extract(path, content string) []string
}

type ExtractorFunc func(path, content string) []string

func (f ExtractorFunc) Extract(path, content string) []string {
	return f(path, content)
}

// Registro extensão → extrator. Tabela fixa.
var extractors = map[string]Extractor{
	".go":   goExtractor{},
	".py":   ExtractorFunc(extractPython),
	".js":   ExtractorFunc(extractJS),
	".jsx":  ExtractorFunc(extractJS),
	".ts":   ExtractorFunc(extractJS),
	".tsx":  ExtractorFunc(extractJS),
	".java": ExtractorFunc(extractJava),
}

// goExtractor faz parse estrutural do fonte Go; erro de sintaxe no
// arquivo alvo não aborta a análise — cai no fallback por regex.
type goExtractor struct{}

func (goExtractor) Extract(path, content string) []string {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, content, parser.ImportsOnly)
	if err != nil {
		return extractGoRegex(path, content)
	}
	var out []string
	for _, imp := range f.Imports {
		target, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		out = append(out, target)
	}
	return out
}

var (
	goImportBlockRe  = regexp.MustCompile(`(?s)import\s*\((.*?)\)`)
	goImportLineRe   = regexp.MustCompile(`(?m)^\s*import\s+(?:\w+\s+)?"([\w./\-]+)"`)
	goQuotedImportRe = regexp.MustCompile(`"([\w./\-]+)"`)
	pyImportRe       = regexp.MustCompile(`(?m)^\s*(?:from|import)\s+([\w.]+)`)
	jsRequireRe      = regexp.MustCompile(`require\(\s*['"](.+?)['"]\s*\)`)
	jsImportFromRe   = regexp.MustCompile(`import\s+.*?\s+from\s+['"](.+?)['"]`)
	javaImportRe     = regexp.MustCompile(`(?m)^import\s+(?:static\s+)?([\w.]+)\s*;`)
)

func extractGoRegex(_, content string) []string {
	var out []string
	for _, block := range goImportBlockRe.FindAllStringSubmatch(content, -1) {
		for _, m := range goQuotedImportRe.FindAllStringSubmatch(block[1], -1) {
			out = append(out, m[1])
		}
	}
	for _, m := range goImportLineRe.FindAllStringSubmatch(content, -1) {
		out = append(out, m[1])
	}
	return out
}

func extractPython(_, content string) []string {
	var out []string
	for _, m := range pyImportRe.FindAllStringSubmatch(content, -1) {
		out = append(out, m[1])
	}
	return out
}

func extractJS(_, content string) []string {
	var out []string
	for _, m := range jsRequireRe.FindAllStringSubmatch(content, -1) {
		out = append(out, m[1])
	}
	for _, m := range jsImportFromRe.FindAllStringSubmatch(content, -1) {
		out = append(out, m[1])
	}
	return out
}

func extractJava(_, content string) []string {
	var out []string
	for _, m := range javaImportRe.FindAllStringSubmatch(content, -1) {
		out = append(out, m[1])
	}
	return out
}

// ForExtension devolve o extrator registrado para a extensão
// (minúscula, com ponto), ou nil se a linguagem não é suportada.
func ForExtension(ext string) Extractor {
	return extractors[strings.ToLower(ext)]
}
