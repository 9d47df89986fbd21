package main

import "github.com/jsphweid/midilint/cmd"

func main() {
	cmd.Execute()
}
