package main

import "github.com/bhelenbr/tfemviz/cmd"

func main() {
	cmd.Execute()
}
