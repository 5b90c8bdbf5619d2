package secscan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Sena-ops/repoxray/internal/model"
)

const removedPlaceholder = `"REMOVED_SECRET"`

// AutoRemove substitui, em cada issue ainda "detected", o texto casado
// pelo placeholder fixo e marca a issue como "removed". O arquivo é
// lido uma vez por chamada (cache entre issues) e reescrito por
// arquivo ao final — a escrita não é transacional entre arquivos.
// Chamar de novo é seguro: issues já "removed" são puladas.
// Substituições que não casam mais (arquivo mudou entre scan e
// resolve) são puladas em silêncio.
func AutoRemove(root string, issues []model.SecurityIssue) int {
	removed := 0
	loaded := map[string][]string{}
	modified := map[string]bool{}

	for i := range issues {
		if issues[i].Status != model.StatusDetected {
			continue
		}

		abs := filepath.Join(root, filepath.FromSlash(issues[i].File))
		lines, ok := loaded[abs]
		if !ok {
			raw, err := os.ReadFile(abs)
			if err != nil {
				continue
			}
			lines = strings.Split(string(raw), "\n")
			loaded[abs] = lines
		}

		idx := issues[i].Line - 1
		if idx < 0 || idx >= len(lines) {
			continue
		}

		original := lines[idx]
		for _, p := range secretPatterns {
			replaced := p.re.ReplaceAllString(original, removedPlaceholder)
			if replaced != original {
				lines[idx] = replaced
				loaded[abs] = lines
				modified[abs] = true
				issues[i].Status = model.StatusRemoved
				removed++
				break
			}
		}
	}

	for abs := range modified {
		_ = os.WriteFile(abs, []byte(strings.Join(loaded[abs], "\n")), 0o644)
	}

	return removed
}

// Ignore marca como "ignored" somente as issues dos índices
// informados; índices fora da faixa são ignorados.
func Ignore(issues []model.SecurityIssue, indices []int) int {
	count := 0
	for _, idx := range indices {
		if idx >= 0 && idx < len(issues) {
			issues[idx].Status = model.StatusIgnored
			count++
		}
	}
	return count
}

// Mask marca toda issue ainda "detected" como "masked". Nenhum
// conteúdo de arquivo é alterado: é só classificação do registro,
// distinta do mascaramento de snippet feito no scan.
func Mask(issues []model.SecurityIssue) int {
	count := 0
	for i := range issues {
		if issues[i].Status == model.StatusDetected {
			issues[i].Status = model.StatusMasked
			count++
		}
	}
	return count
}
