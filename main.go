package main

import "github.com/mouse-blink/shadower/cmd"

func main() {
	cmd.Execute()
}
