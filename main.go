package main

import "pass-finder/cmd"

func main() {
	cmd.Execute()
}
