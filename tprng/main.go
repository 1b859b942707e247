package main

import (
	"log"

	"github.com/tutils/tprng/cmd"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	cmd.Execute()
}
