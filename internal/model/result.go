package model

// EntryPoint é um ponto de entrada detectado no código.
type EntryPoint struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// DatabaseUse registra o primeiro arquivo onde cada banco/ORM aparece.
type DatabaseUse struct {
	Database string `json:"database"`
	File     string `json:"file"`
}

// APIEndpoint é uma rota detectada por padrão de framework.
type APIEndpoint struct {
	Method    string `json:"method"`
	Route     string `json:"route"`
	File      string `json:"file"`
	Framework string `json:"framework"`
}

// AnalysisResult é a saída única de uma execução do orquestrador.
// Escrito uma vez, nunca mutado depois.
type AnalysisResult struct {
	ID               string              `json:"id" yaml:"id"`
	Framework        []string            `json:"framework" yaml:"framework"`
	TechStack        []string            `json:"tech_stack" yaml:"tech_stack"`
	EntryPoints      []EntryPoint        `json:"entry_points" yaml:"entry_points"`
	ArchitectureType string              `json:"architecture_type" yaml:"architecture_type"`
	Components       map[string][]string `json:"components" yaml:"components"`
	DatabaseUsage    []DatabaseUse       `json:"database_usage" yaml:"database_usage"`
	APIEndpoints     []APIEndpoint       `json:"api_endpoints" yaml:"api_endpoints"`
	DependencyGraph  map[string][]string `json:"dependency_graph" yaml:"dependency_graph"`
	FolderStructure  map[string]any      `json:"folder_structure" yaml:"folder_structure"`
	Languages        map[string]int      `json:"languages" yaml:"languages"`
	TotalFiles       int                 `json:"total_files" yaml:"total_files"`
	TotalLines       int                 `json:"total_lines" yaml:"total_lines"`
	Files            []string            `json:"files" yaml:"files"`
}
