package main

import (
	"os"

	"github.com/redjax/weather-cli/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
