package main

import "github.com/curatorhq/curator/cmd"

func main() {
	cmd.Execute()
}
