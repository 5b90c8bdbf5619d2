package secscan

import (
	"regexp"

	"github.com/Sena-ops/repoxray/internal/model"
)

type secretPattern struct {
	name     string
	re       *regexp.Regexp
	severity model.Severity
}

// Tabela ordenada de padrões de segredo: o primeiro que casar em uma
// linha vence (uma issue por linha, não uma por padrão).
var secretPatterns = []secretPattern{
	{
		"Generic API Key",
		regexp.MustCompile(`(?i)(?:api[_-]?key|apikey)\s*[:=]\s*['"]([A-Za-z0-9_\-]{20,})['"]`),
		model.SevHigh,
	},
	{
		"Generic Secret",
		regexp.MustCompile(`(?i)(?:secret|token|auth[_-]?token|access[_-]?token|bearer)\s*[:=]\s*['"]([A-Za-z0-9_\-/.+=]{20,})['"]`),
		model.SevHigh,
	},
	{
		"Password",
		regexp.MustCompile(`(?i)(?:password|passwd|pwd|pass)\s*[:=]\s*['"]([^'"]{6,})['"]`),
		model.SevHigh,
	},
	{
		"AWS Access Key",
		regexp.MustCompile(`(?:AKIA|ABIA|ACCA|ASIA)[A-Z0-9]{16}`),
		model.SevCritical,
	},
	{
		"AWS Secret Key",
		regexp.MustCompile(`(?i)aws[_-]?secret[_-]?access[_-]?key\s*[:=]\s*['"]([A-Za-z0-9/+=]{40})['"]`),
		model.SevCritical,
	},
	{
		"Google API Key",
		regexp.MustCompile(`AIza[A-Za-z0-9_\-]{35}`),
		model.SevHigh,
	},
	{
		"Firebase Config",
		regexp.MustCompile(`(?i)firebase[_-]?(?:api[_-]?key|auth[_-]?domain|project[_-]?id|storage[_-]?bucket)\s*[:=]\s*['"]([^'"]+)['"]`),
		model.SevMedium,
	},
	{
		"Private Key",
		regexp.MustCompile(`-----BEGIN (?:RSA |EC |DSA )?PRIVATE KEY-----`),
		model.SevCritical,
	},
	{
		"GitHub Token",
		regexp.MustCompile(`(?:ghp|gho|ghu|ghs|ghr)_[A-Za-z0-9_]{36,}`),
		model.SevCritical,
	},
	{
		"Slack Token",
		regexp.MustCompile(`xox[bpors]-[A-Za-z0-9\-]{10,}`),
		model.SevHigh,
	},
	{
		"Stripe Key",
		regexp.MustCompile(`(?:sk|pk)_(?:test|live)_[A-Za-z0-9]{20,}`),
		model.SevCritical,
	},
	{
		"Database URL",
		regexp.MustCompile(`(?i)(?:postgres|mysql|mongodb|redis)://[^\s'"]+`),
		model.SevHigh,
	},
	{
		"Hardcoded JWT",
		regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_\-+/=]{10,}`),
		model.SevHigh,
	},
	{
		"SendGrid Key",
		regexp.MustCompile(`SG\.[A-Za-z0-9_\-]{22}\.[A-Za-z0-9_\-]{43}`),
		model.SevHigh,
	},
	{
		"Twilio Key",
		regexp.MustCompile(`SK[a-f0-9]{32}`),
		model.SevMedium,
	},
	{
		"Heroku API Key",
		regexp.MustCompile(`(?i)heroku[_-]?api[_-]?key\s*[:=]\s*['"]([A-Za-z0-9\-]{36,})['"]`),
		model.SevHigh,
	},
	{
		"ENV Secret Assignment",
		regexp.MustCompile(`(?i)^(?:export\s+)?(?:SECRET|TOKEN|API_KEY|PRIVATE_KEY|DB_PASS|DATABASE_URL)\s*=\s*['"]?([^\s'"#]+)`),
		model.SevHigh,
	},
}

// Extensões nunca escaneadas (binários, mídia, arquivos gerados).
var skipExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".ico": true, ".svg": true, ".webp": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".zip": true, ".tar": true, ".gz": true, ".rar": true,
	".pdf": true, ".doc": true, ".docx": true,
	".lock": true, ".map": true,
}

// Skip-set próprio do scanner, menor que o do analisador.
var skipDirs = map[string]bool{
	"node_modules": true, ".git": true, "__pycache__": true,
	"venv": true, ".venv": true, "dist": true, "build": true,
}
