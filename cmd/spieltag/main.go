package main

import "github.com/clubtools/spieltag/internal/cli"

func main() {
	cli.Execute()
}
