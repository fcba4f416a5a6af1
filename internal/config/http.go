package config

type HTTP struct {
	Address string `env:"ADDRESS,expand" envDefault:":8080"`
	// MetricsPath is left empty to disable the metrics endpoint.
	MetricsPath string `env:"METRICS_PATH" envDefault:"/metrics"`
}
