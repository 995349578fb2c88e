package main

import "games-in-common/cmd"

func main() {
	cmd.Execute()
}
