package main

import (
	"log"

	"lucky_wheel/internal/app"
)

func main() {
	a := app.NewApp()

	if err := a.Run(); err != nil {
		log.Fatalf("failed to run app: %v", err)
	}
}
