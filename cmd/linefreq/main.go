package main

import (
	"log"
	"os"

	"gitlab.com/slon/linefreq"
)

func main() {
	if err := linefreq.Run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
