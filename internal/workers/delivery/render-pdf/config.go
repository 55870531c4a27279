// internal/workers/delivery/render-pdf/config.go
package renderpdf

type Config struct {
	Enabled   bool
	OutputDir string
	// Brand is printed in the page header and footer.
	Brand string
}

func LoadConfig() *Config {
	return &Config{
		Enabled:   true,
		OutputDir: "output",
		Brand:     "EdgeVerve",
	}
}
