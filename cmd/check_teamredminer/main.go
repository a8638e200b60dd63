package main

import "github.com/jouir/check-teamredminer/internal/cli"

func main() {
	cli.Execute()
}
