package main

import (
	"github.com/recinall/mhci-binding-predictor/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
