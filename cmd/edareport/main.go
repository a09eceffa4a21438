package main

import (
	"log"
	"os"

	"edareport/pkg/pipeline"
)

func main() {
	if err := pipeline.Run(pipeline.DefaultConfig(), os.Stdout); err != nil {
		log.Fatalf("edareport: %v", err)
	}
}
