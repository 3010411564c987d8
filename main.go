package main

import "post-sync/cmd"

func main() {
	cmd.Execute()
}
