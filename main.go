package main

import "github.com/vietdv277/awsctx/cmd"

func main() {
	cmd.Execute()
}
