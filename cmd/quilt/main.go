package main

import (
	"github.com/quiltlabs/quilt/cmd/quilt/cmd"
)

func main() {
	cmd.Execute()
}
