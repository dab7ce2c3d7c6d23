package main

import "github.com/3UN014/subdomain-enumeration/cmd"

func main() {
	cmd.Execute()
}
