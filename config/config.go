package config

type (
	Headers struct {
		// Prealloc is the number of header seats allocated upfront for each
		// request.
		Prealloc int
	}

	NET struct {
		// WriteBufferPrealloc is the initial capacity of the buffer a
		// response is rendered into before hitting the socket.
		WriteBufferPrealloc int
	}
)

type Config struct {
	Headers Headers
	NET     NET
}

func Default() *Config {
	return &Config{
		Headers: Headers{
			Prealloc: 8,
		},
		NET: NET{
			WriteBufferPrealloc: 1024,
		},
	}
}

// Fill replaces zero fields of the config with default values.
func Fill(cfg *Config) *Config {
	defaults := Default()

	if cfg.Headers.Prealloc == 0 {
		cfg.Headers.Prealloc = defaults.Headers.Prealloc
	}

	if cfg.NET.WriteBufferPrealloc == 0 {
		cfg.NET.WriteBufferPrealloc = defaults.NET.WriteBufferPrealloc
	}

	return cfg
}
