package model

import "github.com/google/uuid"

type Severity string

const (
	SevCritical Severity = "critical"
	SevHigh     Severity = "high"
	SevMedium   Severity = "medium"
	SevLow      Severity = "low"
)

// Rank devolve a posição da severidade na ordem fixa de prioridade
// (critical primeiro). Severidades desconhecidas vão para o fim.
func (s Severity) Rank() int {
	switch s {
	case SevCritical:
		return 0
	case SevHigh:
		return 1
	case SevMedium:
		return 2
	case SevLow:
		return 3
	}
	return 4
}

// Status de resolução de uma issue. "detected" é o estado inicial;
// os demais são terminais — nenhuma transição sai deles.
type Status string

const (
	StatusDetected Status = "detected"
	StatusRemoved  Status = "removed"
	StatusIgnored  Status = "ignored"
	StatusMasked   Status = "masked"
)

// SecurityIssue é um segredo potencial encontrado pelo scanner.
type SecurityIssue struct {
	Type         string   `json:"type"`
	File         string   `json:"file"`
	Line         int      `json:"line"`
	Severity     Severity `json:"severity"`
	Status       Status   `json:"status"`
	Snippet      string   `json:"snippet"`
	OriginalLine string   `json:"original_line"`
}

// ScanResult é o resultado de um scan de segurança, no formato armazenado.
type ScanResult struct {
	ID          string          `json:"id"`
	TotalIssues int             `json:"total_issues"`
	Resolved    int             `json:"resolved"`
	Issues      []SecurityIssue `json:"issues"`
}

// NewScanResult monta o resultado armazenável de um scan: total real,
// lista cortada em issuesCap.
func NewScanResult(issues []SecurityIssue, issuesCap int) *ScanResult {
	stored := issues
	if len(stored) > issuesCap {
		stored = stored[:issuesCap]
	}
	return &ScanResult{
		ID:          uuid.NewString(),
		TotalIssues: len(issues),
		Resolved:    0,
		Issues:      stored,
	}
}
