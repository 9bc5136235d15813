package main

import "github.com/Manu343726/sysregs/cmd"

func main() {
	cmd.Execute()
}
