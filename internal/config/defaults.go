package config

const (
	// DefaultDependency is the Gradle coordinate of the UXCam Android SDK.
	// The 3.+ dynamic version tracks the latest v3 release, matching the
	// integration instructions published by UXCam.
	DefaultDependency = "com.uxcam:uxcam:3.+"

	// DefaultMavenRepository is the UXCam Android artifact repository.
	DefaultMavenRepository = "https://sdk.uxcam.com/android/"

	// DefaultAppModule is the conventional Android application module name.
	DefaultAppModule = "app"
)

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Transport: TransportStdio,
			Host:      "localhost",
			Port:      8090,
		},
		SDK: SDKConfig{
			Dependency:      DefaultDependency,
			MavenRepository: DefaultMavenRepository,
		},
		Project: ProjectConfig{
			Root:      ".",
			AppModule: DefaultAppModule,
		},
	}
}
