package main

import "github.com/startuz/xoxide/cmd"

func main() {
	cmd.Execute()
}
