package main

import "github.com/rsdoc-dev/rsdoc/cmd"

func main() {
	cmd.Execute()
}
