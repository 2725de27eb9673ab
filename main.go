package main

import "desknotify/cmd"

func main() {
	cmd.Execute()
}
