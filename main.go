package main

import "github.com/inovacc/repodesc/cmd"

func main() {
	cmd.Execute()
}
