package main

import "github.com/ryotarofr/dx-ax-container/cmd/dxax/cmd"

func main() {
	cmd.Execute()
}
