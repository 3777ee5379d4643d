package main

import "github.com/abdelhs/gsh/cmd"

func main() {
	cmd.Execute()
}
