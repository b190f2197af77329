package main

import "citizen-collect/cmd"

func main() {
	cmd.Execute()
}
