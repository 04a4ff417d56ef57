package main

import "github.com/jshim/cinesync/cmd"

func main() {
	cmd.Execute()
}
