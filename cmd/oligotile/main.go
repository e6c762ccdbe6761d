// cmd/oligotile/main.go
package main

import (
	"oligotile/internal/appshell"
	"oligotile/internal/cli"
)

func main() {
	appshell.Main(cli.Run)
}
