package main

import "github.com/zjnav/zjnav/cmd"

func main() {
	cmd.Execute()
}
