package main

import "github.com/bietkhonhungvandi212/pagesim/internal/cli"

func main() {
	cli.Execute()
}
