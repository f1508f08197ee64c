package main

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// loadEnv reads the first existing dotenv file. Variables already set in the environment win.
func loadEnv(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			log.Printf("ignoring %s: %v", path, err)
			continue
		}
		log.Printf("loaded environment from %s", path)
		return
	}
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	i, err := strconv.ParseInt(v, 0, 0)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return int(i)
}
