package main

import "github.com/lindsey-doyle/camp-finder/internal/cli"

func main() {
	cli.Execute()
}
