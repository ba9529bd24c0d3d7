package main

import (
	"os"

	"github.com/llehouerou/stepviz/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
