package main

import "github.com/aalvaropc/svgsym/internal/cli"

func main() {
	cli.Execute()
}
