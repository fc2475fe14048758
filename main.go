package main

import "github.com/notargets/flamestab/cmd"

func main() {
	cmd.Execute()
}
