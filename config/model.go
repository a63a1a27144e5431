package config

// Config drives the monitor daemon. The one-shot CLI commands only use
// environment variables and flags.
type Config struct {
	LogLevel   string      `yaml:"LogLevel"`
	Interval   int         `yaml:"Interval"`
	Concurrent int         `yaml:"Concurrent"`
	Notify     *Notify     `yaml:"Notify"`
	Endpoints  []*Endpoint `yaml:"Endpoints"`
}

type Endpoint struct {
	Name    string `yaml:"Name"`
	APIBase string `yaml:"APIBase"`
}

type Notify struct {
	Provider string            `yaml:"Provider"`
	Config   map[string]string `yaml:"Config"`
}
