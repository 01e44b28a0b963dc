package main

import "github.com/autowrap/translate/cmd"

func main() {
	cmd.Execute()
}
