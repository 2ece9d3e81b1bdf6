package main

import (
	"github.com/deepnoodle-ai/veo/cmd/veo/cli"
)

func main() {
	cli.Execute()
}
