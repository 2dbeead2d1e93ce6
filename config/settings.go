package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

const DefaultPath = "settings.json"

type Settings struct {
	// ClearScreen clears the console between menu rounds.
	ClearScreen bool `json:"clearScreen"`
	// ArrayDemo runs the dynamic array exercise before the triangle menu.
	ArrayDemo bool `json:"arrayDemo"`
	// StlPath is where the triangle is saved to and loaded from.
	StlPath string `json:"stlPath"`
	// ModelName labels the exported vertex buffer.
	ModelName string `json:"modelName"`
}

func Defaults() Settings {
	return Settings{
		ClearScreen: true,
		ArrayDemo:   true,
		StlPath:     "triangle.stl",
		ModelName:   "triangle",
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Defaults()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No %s found, using defaults", path)
			return s, nil
		}
		return s, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&s); err != nil {
		return Defaults(), fmt.Errorf("error parsing %s: %w", path, err)
	}
	if s.StlPath == "" {
		s.StlPath = Defaults().StlPath
	}
	if s.ModelName == "" {
		s.ModelName = Defaults().ModelName
	}

	log.Printf("Loaded settings from %s: clearScreen=%t arrayDemo=%t stlPath=%s",
		path, s.ClearScreen, s.ArrayDemo, s.StlPath)
	return s, nil
}
