package main

import "github.com/Atwolf/graph-vis/cmd"

func main() {
	cmd.Execute()
}
