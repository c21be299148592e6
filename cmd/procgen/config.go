package main

import (
	"encoding/json"
	"os"
)

// Config holds the settings of both subcommands. Flags fill it first; a
// JSON file given with -c overrides any field it sets.
type Config struct {
	// sequence
	Generator string `json:"gen"`
	Seed      uint64 `json:"seed"`
	Count     int    `json:"count"`
	Hex       bool   `json:"hex"`

	// noise
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	OutWidth    int     `json:"outwidth"`
	OutHeight   int     `json:"outheight"`
	Frequency   float64 `json:"freq"`
	Octaves     int     `json:"octaves"`
	Persistence float64 `json:"persistence"`
	Z           float64 `json:"z"`
	Raw         bool    `json:"raw"`
	Ramp        string  `json:"ramp"`
	Out         string  `json:"out"`
	Format      string  `json:"format"`
	Workers     int     `json:"workers"`

	// state persistence
	StateDir    string `json:"state"`
	Key         string `json:"key"`
	Redis       string `json:"redis"`
	RedisPrefix string `json:"redisprefix"`
	NoComp      bool   `json:"nocomp"`
}

func parseJSONConfig(config *Config, path string) error {
	file, err := os.Open(path) // For read access.
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(config)
}
