package main

import "keyaudit/cmd"

func main() {
	cmd.Execute()
}
