package jenkins

// CIServerConfig describes one configured CI server.
type CIServerConfig struct {
	ID     ServerID
	Server string
	User   string
	Token  string
	Notify []string
}

// GlobalConfig is the decoded contents of jenkins.toml.
type GlobalConfig struct {
	SleepSeconds uint64
	Jobs         []CIServerConfig
}
