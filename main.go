package main

import "calog/cmd"

func main() {
	cmd.Execute()
}
