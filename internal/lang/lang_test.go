package lang

import "testing"

func TestFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Language
	}{
		{"python", "src/app.py", Python},
		{"jsx_is_javascript", "web/App.jsx", JavaScript},
		{"tsx_is_typescript", "web/App.tsx", TypeScript},
		{"uppercase_ext", "Main.GO", Go},
		{"yaml_long", "deploy/app.yaml", YAML},
		{"unknown_ext", "binary.exe", ""},
		{"no_ext", "Makefile", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FromPath(tt.path)
			if result != tt.expected {
				t.Errorf("esperado %q, obtido %q", tt.expected, result)
			}
		})
	}
}

func TestIsData(t *testing.T) {
	for _, l := range []Language{JSON, XML, Markdown, Text} {
		if !l.IsData() {
			t.Errorf("%s deveria ser linguagem de dados", l)
		}
	}
	for _, l := range []Language{Python, Go, YAML, SQL} {
		if l.IsData() {
			t.Errorf("%s não deveria ser linguagem de dados", l)
		}
	}
}
