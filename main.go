package main

import "github.com/inovacc/opnr/cmd"

func main() {
	cmd.Execute()
}
