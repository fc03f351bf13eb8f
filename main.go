package main

import (
	"os"

	"awsls/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
