package lang

import (
	"path/filepath"
	"strings"
)

type Language string

const (
	Python     Language = "python"
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	Java       Language = "java"
	Go         Language = "go"
	Ruby       Language = "ruby"
	PHP        Language = "php"
	CSharp     Language = "csharp"
	CPP        Language = "cpp"
	C          Language = "c"
	Rust       Language = "rust"
	Swift      Language = "swift"
	Kotlin     Language = "kotlin"
	HTML       Language = "html"
	CSS        Language = "css"
	SCSS       Language = "scss"
	SQL        Language = "sql"
	Shell      Language = "shell"
	YAML       Language = "yaml"
	JSON       Language = "json"
	XML        Language = "xml"
	Markdown   Language = "markdown"
	Text       Language = "text"
)

// Mapeamento extensão → linguagem. Tabela fixa, carregada uma única vez.
var byExtension = map[string]Language{
	".py":    Python,
	".js":    JavaScript,
	".jsx":   JavaScript,
	".ts":    TypeScript,
	".tsx":   TypeScript,
	".java":  Java,
	".go":    Go,
	".rb":    Ruby,
	".php":   PHP,
	".cs":    CSharp,
	".cpp":   CPP,
	".c":     C,
	".rs":    Rust,
	".swift": Swift,
	".kt":    Kotlin,
	".html":  HTML,
	".css":   CSS,
	".scss":  SCSS,
	".sql":   SQL,
	".sh":    Shell,
	".yml":   YAML,
	".yaml":  YAML,
	".json":  JSON,
	".xml":   XML,
	".md":    Markdown,
	".txt":   Text,
}

// FromPath retorna a linguagem associada à extensão do arquivo,
// ou "" se a extensão não for reconhecida.
func FromPath(path string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	return byExtension[ext]
}

// IsData indica linguagens de dados/markup: contam no total de linhas,
// mas não entram na contagem por linguagem.
func (l Language) IsData() bool {
	switch l {
	case JSON, XML, Markdown, Text:
		return true
	}
	return false
}
