package main

import "github.com/tanq16/pullr/cmd"

func main() {
	cmd.Execute()
}
