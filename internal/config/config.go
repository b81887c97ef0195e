package config

// ServerToken is the product token sent in the Server header of every
// response.
const ServerToken = "users-api/1.0"

// Config holds the compiled-in settings for one server variant. There are
// no flags, environment variables, or config files: ports and certificate
// paths are constants of the build.
type Config struct {
	ListenAddr string // TCP listen address, IPv4 only
	Scheme     string // "http" or "https", used for the startup banner
	TLS        bool   // whether to wrap accepted connections in TLS
	CertFile   string // PEM certificate chain (TLS variant)
	KeyFile    string // PEM private key (TLS variant)
}

// Plaintext returns the configuration for the plaintext variant on port
// 8080.
func Plaintext() *Config {
	return &Config{
		ListenAddr: "0.0.0.0:8080",
		Scheme:     "http",
	}
}

// TLS returns the configuration for the TLS variant on port 8443. The
// certificate chain and key are read from the process working directory at
// startup.
func TLS() *Config {
	return &Config{
		ListenAddr: "0.0.0.0:8443",
		Scheme:     "https",
		TLS:        true,
		CertFile:   "cert.pem",
		KeyFile:    "key.pem",
	}
}
