package main

import (
	"log"
	"os"

	"github.com/nikuznetsov/geolingo/internal/worldgen"
)

func main() {
	outPath := os.Getenv("OUT_PATH")
	if outPath == "" {
		outPath = "data/world_data.json"
	}

	if err := worldgen.WriteFile(outPath); err != nil {
		log.Fatal("Failed to generate dataset:", err)
	}

	log.Printf("Wrote dataset to %s", outPath)
}

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
