package main

import "github.com/sdhar150/crossing-counties/cmd"

func main() {
	cmd.Execute()
}
