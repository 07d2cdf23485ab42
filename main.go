package main

import "ngoconnect-web/cmd"

func main() {
	cmd.Execute()
}
