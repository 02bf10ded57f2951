package main

import "sports-catalog/cmd"

func main() {
	cmd.Execute()
}
