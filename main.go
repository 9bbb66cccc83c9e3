package main

import "github.com/mouse-blink/bva/cmd"

func main() {
	cmd.Execute()
}
