package main

import "srcmetrics/src/handler/cli"

func main() {
	cli.Run()
}
