package main

import "github.com/MyCarrier-DevOps/go-commitlint/cmd"

func main() {
	cmd.Execute()
}
