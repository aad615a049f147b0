package main

import "dbapi-compare/cmd"

func main() {
	cmd.Execute()
}
