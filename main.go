package main

import "hotwire-demo/cmd"

func main() {
	cmd.Execute()
}
