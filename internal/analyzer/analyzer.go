// Package analyzer orquestra a análise: uma travessia, fan-out para
// os detectores, resultado único.
package analyzer

import (
	"github.com/Sena-ops/repoxray/internal/config"
	"github.com/Sena-ops/repoxray/internal/detect"
	"github.com/Sena-ops/repoxray/internal/graph"
	"github.com/Sena-ops/repoxray/internal/logging"
	"github.com/Sena-ops/repoxray/internal/model"
	"github.com/Sena-ops/repoxray/internal/tree"
	"github.com/Sena-ops/repoxray/internal/walker"
	"github.com/google/uuid"
)

// Analyze roda o pipeline completo sobre root. Os detectores são
// funções puras de (lista de arquivos, mapa de conteúdo); só a
// travessia toca o filesystem. Tudo síncrono, sem concorrência.
func Analyze(root string, cfg config.Config) (*model.AnalysisResult, error) {
	snap, err := walker.Walk(root, cfg)
	if err != nil {
		return nil, err
	}

	if logging.Logger != nil {
		logging.Logger.Infof("Escaneados %d arquivos, %d linhas em %s",
			snap.TotalFiles, snap.TotalLines, snap.Root)
	}

	storedFiles := snap.Files
	if len(storedFiles) > cfg.FilesCap {
		storedFiles = storedFiles[:cfg.FilesCap]
	}

	return &model.AnalysisResult{
		ID:               uuid.NewString(),
		Framework:        detect.Frameworks(snap.Files, snap.Contents),
		TechStack:        detect.TechStack(snap.Files, snap.Contents),
		EntryPoints:      detect.EntryPoints(snap.Files, snap.Contents),
		ArchitectureType: detect.Architecture(snap.Files),
		Components:       detect.Components(snap.Files, cfg.ComponentCap),
		DatabaseUsage:    detect.DatabaseUsage(snap.Files, snap.Contents),
		APIEndpoints:     detect.APIEndpoints(snap.Files, snap.Contents),
		DependencyGraph:  graph.Build(snap.Files, snap.Contents, cfg.GraphCap),
		FolderStructure:  map[string]any(tree.Build(snap.Files, cfg.TreeMaxDepth)),
		Languages:        snap.Languages,
		TotalFiles:       snap.TotalFiles,
		TotalLines:       snap.TotalLines,
		Files:            storedFiles,
	}, nil
}
