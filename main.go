package main

import cli "tradeupengine/cmd/cli"

func main() {
	cli.Execute()
}
