package main

import "github.com/josephlewis42/argfile/cmd"

func main() {
	cmd.Execute()
}
