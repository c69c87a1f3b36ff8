package main

import "github.com/arloliu/dnacoder/cmd/dnacoder/cmd"

func main() {
	cmd.Execute()
}
