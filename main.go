package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"geometry_tool/config"
)

const PROGRAM_NAME = "Geometry tool"

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stderr)
}

func main() {
	settingsPath := flag.String("settings", config.DefaultPath, "path to the JSON settings file")
	flag.Parse()

	log.Printf("Starting %s", PROGRAM_NAME)
	log.Printf("Using GoLang: [%s]", runtime.Version())

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}

	driver := NewDriver(os.Stdin, os.Stdout, settings)
	if err := driver.Run(); err != nil {
		log.Fatal(err)
	}
	log.Printf("%s finished", PROGRAM_NAME)
}
