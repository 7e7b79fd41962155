package main

import "filegen/cmd/filegen/cmd"

func main() {
	cmd.Execute()
}
