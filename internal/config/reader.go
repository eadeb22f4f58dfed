package config

import "github.com/ilyakaznacheev/cleanenv"

// ConfigFileEnv names an optional config file (.env, .yaml, .json or .toml).
// Values missing from the file fall back to the environment and defaults.
const ConfigFileEnv = "CONFIG_FILE"

type Reader interface {
	Read() (*Config, error)
}

// NewReader returns a FileReader when path is set and an EnvReader otherwise.
func NewReader(path string) Reader {
	if path == "" {
		return NewEnvReader()
	}
	return NewFileReader(path)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

type FileReader struct {
	path string
}

func NewFileReader(path string) FileReader {
	return FileReader{path: path}
}

func (r FileReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadConfig(r.path, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
