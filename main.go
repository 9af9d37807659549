package main

import (
	"github/cloex/go-exchange/cmd"
)

func main() {
	cmd.Execute()
}
