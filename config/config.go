package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a yaml file of default lint settings. The numbers are
// pointers so an explicit 0 is distinguishable from absent.
type Profile struct {
	Velocity *uint8 `yaml:"velocity"`
	Align    *int   `yaml:"align"`
	Key      string `yaml:"key"`
	Strategy string `yaml:"strategy"`
}

func LoadProfile(path string) (Profile, error) {
	var p Profile
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("could not read profile %v: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("could not parse profile %v: %w", path, err)
	}
	return p, nil
}

func GetServeAddr() string {
	addr := os.Getenv("MIDILINT_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}
