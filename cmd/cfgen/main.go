package main

import "github.com/forgebuild/cfgen/cmd/cfgen/internal"

func main() {
	internal.Execute()
}
