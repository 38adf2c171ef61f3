package main

import (
	"context"

	"github.com/vfg2006/weather-bid-manager/cmd/cli/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
