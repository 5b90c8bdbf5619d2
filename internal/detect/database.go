package detect

import (
	"regexp"

	"github.com/Sena-ops/repoxray/internal/model"
)

type dbPattern struct {
	re   *regexp.Regexp
	name string
}

var dbPatterns = []dbPattern{
	{regexp.MustCompile(`(?i)CREATE\s+TABLE`), "SQL (CREATE TABLE)"},
	{regexp.MustCompile(`(?i)SELECT\s+.+\s+FROM`), "SQL (SELECT)"},
	{regexp.MustCompile(`(?i)INSERT\s+INTO`), "SQL (INSERT)"},
	{regexp.MustCompile(`(?i)db\.collection\(`), "Firestore / MongoDB"},
	{regexp.MustCompile(`(?i)mongoose\.model\(`), "MongoDB (Mongoose)"},
	{regexp.MustCompile(`(?i)Model\.objects\.`), "Django ORM"},
	{regexp.MustCompile(`(?i)session\.query\(`), "SQLAlchemy"},
	{regexp.MustCompile(`(?i)prisma\.\w+\.`), "Prisma ORM"},
	{regexp.MustCompile(`(?i)sequelize\.define\(`), "Sequelize"},
	{regexp.MustCompile(`(?i)knex\(`), "Knex.js"},
	{regexp.MustCompile(`(?i)firebase.*firestore`), "Firebase Firestore"},
	{regexp.MustCompile(`(?i)dynamodb`), "AWS DynamoDB"},
}

// DatabaseUsage registra o primeiro arquivo em que cada banco/ORM
// aparece; um label visto não é registrado de novo.
func DatabaseUsage(files []string, contents map[string]string) []model.DatabaseUse {
	var results []model.DatabaseUse
	seen := map[string]bool{}

	for _, f := range files {
		content, ok := contents[f]
		if !ok {
			continue
		}
		for _, p := range dbPatterns {
			if seen[p.name] {
				continue
			}
			if p.re.MatchString(content) {
				results = append(results, model.DatabaseUse{Database: p.name, File: f})
				seen[p.name] = true
			}
		}
	}
	return results
}
