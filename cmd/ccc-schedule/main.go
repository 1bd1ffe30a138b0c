package main

import "github.com/jmcpheron/ccc-schedule-collector/internal/cli"

func main() {
	cli.Execute()
}
