package main

import "github.com/KaramelBytes/nborank/cmd"

func main() {
	cmd.Execute()
}
