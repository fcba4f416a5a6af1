package config

type Components struct {
	// Secret keys the props signature and encryption. The default is only
	// suitable for local development.
	Secret    string `env:"SECRET,unset" envDefault:"hxui-development-secret"`
	Sensitive bool   `env:"SENSITIVE" envDefault:"false"`
}
