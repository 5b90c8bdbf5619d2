package detect

import (
	"path"
	"regexp"

	"github.com/Sena-ops/repoxray/internal/lang"
	"github.com/Sena-ops/repoxray/internal/model"
)

type entryPattern struct {
	re     *regexp.Regexp
	reason string
}

var entryPatterns = map[lang.Language][]entryPattern{
	lang.Python: {
		{regexp.MustCompile(`if\s+__name__\s*==\s*["']__main__["']`), "main guard"},
		{regexp.MustCompile(`app\.run\(`), "Flask app.run()"},
		{regexp.MustCompile(`uvicorn\.run\(`), "Uvicorn run"},
		{regexp.MustCompile(`manage\.py`), "Django manage.py"},
	},
	lang.JavaScript: {
		{regexp.MustCompile(`app\.listen\(`), "Express listen"},
		{regexp.MustCompile(`createServer\(`), "HTTP server"},
		{regexp.MustCompile(`ReactDOM\.render\(|createRoot\(`), "React entry"},
	},
	lang.TypeScript: {
		{regexp.MustCompile(`app\.listen\(`), "Express listen"},
		{regexp.MustCompile(`bootstrap\(\)`), "NestJS bootstrap"},
	},
}

var entryFilenames = []string{
	"main.py", "app.py", "run.py", "server.py", "wsgi.py", "asgi.py",
	"manage.py", "index.py",
	"index.js", "server.js", "app.js", "main.js",
	"index.ts", "server.ts", "app.ts", "main.ts",
	"index.tsx", "main.tsx", "App.tsx",
	"Main.java", "Application.java",
	"main.go", "cmd/main.go",
}

var entryFilenameSet = func() map[string]bool {
	m := map[string]bool{}
	for _, f := range entryFilenames {
		m[f] = true
	}
	return m
}()

// EntryPoints une nomes de arquivo conhecidos e padrões de conteúdo por
// linguagem. Pares (arquivo, motivo) duplicados são suprimidos.
func EntryPoints(files []string, contents map[string]string) []model.EntryPoint {
	var results []model.EntryPoint
	seen := map[model.EntryPoint]bool{}
	add := func(ep model.EntryPoint) {
		if !seen[ep] {
			seen[ep] = true
			results = append(results, ep)
		}
	}

	for _, f := range files {
		base := path.Base(f)
		if entryFilenameSet[base] {
			add(model.EntryPoint{File: f, Reason: "Known entry point filename: " + base})
		}
	}

	for _, f := range files {
		content, ok := contents[f]
		if !ok {
			continue
		}
		for _, p := range entryPatterns[lang.FromPath(f)] {
			if p.re.MatchString(content) {
				add(model.EntryPoint{File: f, Reason: p.reason})
			}
		}
	}

	return results
}
