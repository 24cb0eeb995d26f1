package main

import (
	"seogen/cmd/cmd"
	"seogen/internal/logger"
)

func main() {
	logger.Init()
	cmd.Execute()
}
