package graph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGoStructuralParse(t *testing.T) {
	content := `package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() { fmt.Println(os.Args, cobra.Command{}) }
`
	got := Build([]string{"main.go"}, map[string]string{"main.go": content}, 100)
	require.Equal(t, []string{"fmt", "os", "github.com/spf13/cobra"}, got["main.go"])
}

func TestGoParseFailureFallsBackToRegex(t *testing.T) {
	// fonte com erro de sintaxe: o parse falha, o fallback por regex
	// ainda extrai o bloco de imports sem abortar a análise
	content := "pakage main\n\nimport (\n\t\"fmt\"\n\t\"strings\"\n)\n\nfunc main() {}\n"
	got := Build([]string{"quebrado.go"}, map[string]string{"quebrado.go": content}, 100)
	require.Equal(t, []string{"fmt", "strings"}, got["quebrado.go"])
}

func TestPythonRegexExtraction(t *testing.T) {
	content := "import os\nfrom collections import defaultdict\nimport re, json\n"
	got := Build([]string{"a.py"}, map[string]string{"a.py": content}, 100)
	require.Equal(t, []string{"os", "collections", "re"}, got["a.py"])
}

func TestJSExtraction(t *testing.T) {
	content := "const fs = require('fs')\nimport React from 'react'\n"
	got := Build([]string{"a.js"}, map[string]string{"a.js": content}, 100)
	require.Equal(t, []string{"fs", "react"}, got["a.js"])
}

func TestJavaExtraction(t *testing.T) {
	content := "import java.util.List;\nimport static org.junit.Assert.assertTrue;\n"
	got := Build([]string{"A.java"}, map[string]string{"A.java": content}, 100)
	require.Equal(t, []string{"java.util.List", "org.junit.Assert.assertTrue"}, got["A.java"])
}

func TestBuildCapKeepsHighestOutDegree(t *testing.T) {
	files := make([]string, 0, 4)
	contents := map[string]string{}
	for i := 0; i < 4; i++ {
		name := fmt.Sprintf("f%d.py", i)
		files = append(files, name)
		content := ""
		for j := 0; j <= i; j++ {
			content += fmt.Sprintf("import dep%d\n", j)
		}
		contents[name] = content
	}

	got := Build(files, contents, 2)
	require.Len(t, got, 2)
	require.Contains(t, got, "f3.py") // 4 imports
	require.Contains(t, got, "f2.py") // 3 imports
}

func TestUnsupportedExtensionIgnored(t *testing.T) {
	got := Build([]string{"a.rb"}, map[string]string{"a.rb": "require 'json'\n"}, 100)
	require.Empty(t, got)
}
