package main

import "kanbodoro/cmd/kanbodoro-cli/cmd"

func main() {
	cmd.Execute()
}
