package main

import "github.com/Sena-ops/repoxray/cmd"

func main() {
	cmd.Execute()
}
