package main

import "github.com/pvermeer/zbminstall/internal/cli"

func main() {
	cli.Execute()
}
