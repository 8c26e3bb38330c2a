package main

import (
	"log"

	"github.com/pmlaogao/portal/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ portal failed to start: %v", err)
	}
}
