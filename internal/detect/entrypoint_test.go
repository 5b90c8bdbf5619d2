package detect

import (
	"testing"

	"github.com/Sena-ops/repoxray/internal/model"
	"github.com/stretchr/testify/require"
)

func TestEntryPointsScenario(t *testing.T) {
	files := []string{"app.py", "models/user.py"}
	contents := map[string]string{
		"app.py":         "from flask import Flask\napp = Flask(__name__)\napp.run(debug=True)\n",
		"models/user.py": "class User:\n    pass\n",
	}

	got := EntryPoints(files, contents)

	require.Contains(t, got, model.EntryPoint{File: "app.py", Reason: "Flask app.run()"})
	require.Contains(t, got, model.EntryPoint{File: "app.py", Reason: "Known entry point filename: app.py"})
	for _, ep := range got {
		require.NotEqual(t, "models/user.py", ep.File)
	}
}

func TestEntryPointsDeduplicated(t *testing.T) {
	files := []string{"server.js"}
	contents := map[string]string{
		"server.js": "app.listen(3000)\napp.listen(4000)\n",
	}

	got := EntryPoints(files, contents)

	count := 0
	for _, ep := range got {
		if ep.Reason == "Express listen" {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestEntryPointsMainGuard(t *testing.T) {
	files := []string{"scripts/tool.py"}
	contents := map[string]string{
		"scripts/tool.py": "if __name__ == '__main__':\n    main()\n",
	}

	got := EntryPoints(files, contents)
	require.Equal(t, []model.EntryPoint{{File: "scripts/tool.py", Reason: "main guard"}}, got)
}
