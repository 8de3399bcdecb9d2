package config

import "fmt"

// Validate checks the configuration for values the server cannot run with.
func (c Config) Validate() error {
	switch c.Server.Transport {
	case TransportStdio, TransportSSE, TransportStreamableHTTP:
	default:
		return fmt.Errorf("invalid transport %q: must be one of %s, %s, %s",
			c.Server.Transport, TransportStdio, TransportSSE, TransportStreamableHTTP)
	}

	if c.Server.Transport != TransportStdio {
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Server.Port)
		}
		if c.Server.Host == "" {
			return fmt.Errorf("host must not be empty for the %s transport", c.Server.Transport)
		}
	}

	if c.SDK.Dependency == "" {
		return fmt.Errorf("sdk.dependency must not be empty")
	}
	if c.SDK.MavenRepository == "" {
		return fmt.Errorf("sdk.mavenRepository must not be empty")
	}
	if c.Project.AppModule == "" {
		return fmt.Errorf("project.appModule must not be empty")
	}

	return nil
}
