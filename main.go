// Package main is the entry point for dashgallery.
package main

import (
	"github.com/samber/lo"

	"dashgallery/cmd"
	"dashgallery/internal/config"
)

func main() {
	lo.Must0(config.Setup())
	cmd.Execute()
}
