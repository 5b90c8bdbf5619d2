package detect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameworksFromManifests(t *testing.T) {
	files := []string{"requirements.txt", "package.json"}
	contents := map[string]string{
		"requirements.txt": "Flask==3.0.0\ngunicorn\n",
		"package.json":     `{"dependencies": {"react": "^18.0.0"}}`,
	}

	got := Frameworks(files, contents)
	require.Equal(t, []string{"Flask", "React"}, got)
}

func TestFrameworksFromImports(t *testing.T) {
	files := []string{"app.py", "server.js"}
	contents := map[string]string{
		"app.py":    "from flask import Flask\napp = Flask(__name__)\n",
		"server.js": "const express = require('express')\n",
	}

	got := Frameworks(files, contents)
	require.Contains(t, got, "Flask")
	require.Contains(t, got, "Express.js")
}

func TestFrameworksDeduplicated(t *testing.T) {
	// django no manifesto E no import: aparece uma vez só
	files := []string{"requirements.txt", "manage.py"}
	contents := map[string]string{
		"requirements.txt": "django>=4.0\n",
		"manage.py":        "import django\n",
	}

	got := Frameworks(files, contents)
	require.Equal(t, []string{"Django"}, got)
}

func TestFrameworksUnknown(t *testing.T) {
	got := Frameworks([]string{"main.c"}, map[string]string{"main.c": "int main() {}"})
	require.Equal(t, []string{"Unknown"}, got)
}
