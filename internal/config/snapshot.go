package config

type Snapshot struct {
	Path string `env:"SNAPSHOT_PATH" envDefault:"stock-levels.json"`
}
