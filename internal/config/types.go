package config

// Config is the top-level configuration structure for the UXCam MCP server.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	SDK     SDKConfig     `yaml:"sdk"`
	Project ProjectConfig `yaml:"project"`
}

const (
	// TransportStreamableHTTP is the streamable HTTP transport.
	TransportStreamableHTTP = "streamable-http"
	// TransportSSE is the Server-Sent Events transport.
	TransportSSE = "sse"
	// TransportStdio is the standard I/O transport.
	TransportStdio = "stdio"
)

// ServerConfig defines how the MCP server is exposed.
type ServerConfig struct {
	Transport string `yaml:"transport,omitempty"` // Transport to use (default: stdio)
	Host      string `yaml:"host,omitempty"`      // Host to bind to for HTTP transports (default: localhost)
	Port      int    `yaml:"port,omitempty"`      // Port for HTTP transports (default: 8090)
}

// SDKConfig pins the UXCam artifact coordinates written into Gradle scripts.
type SDKConfig struct {
	Dependency      string `yaml:"dependency,omitempty"`      // Maven coordinate (default: com.uxcam:uxcam:3.+)
	MavenRepository string `yaml:"mavenRepository,omitempty"` // Repository URL (default: https://sdk.uxcam.com/android/)
}

// ProjectConfig locates the Android project to integrate.
type ProjectConfig struct {
	Root      string `yaml:"root,omitempty"`      // Project root directory (default: current directory)
	AppModule string `yaml:"appModule,omitempty"` // Application module name (default: app)
}
