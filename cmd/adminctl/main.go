package main

import "github.com/pushpakoirala/portfolio-api/internal/cli"

func main() {
	cli.Execute()
}
