package main

import "github.com/theslyprofessor/zellij-pane-tracker/cmd"

func main() {
	cmd.Execute()
}
