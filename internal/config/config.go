package config

import (
	"os"
	"regexp"

	"github.com/imdario/mergo"
	"github.com/projectdiscovery/mapcidr"
	"gopkg.in/yaml.v3"
)

var cidrSuffix = regexp.MustCompile(`\/\d{1,2}$`)

// SSHOverride represents the credentials needed to
// override ssh config for a single device
type SSHOverride struct {
	Target   string `yaml:"target"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Port     string `yaml:"port"`
}

// SSHConfig represents the credentials used to reach devices
type SSHConfig struct {
	User      string        `yaml:"user"`
	Password  string        `yaml:"password"`
	Port      string        `yaml:"port"`
	Overrides []SSHOverride `yaml:"overrides"`
}

// Config represents the data structure of our user provided yaml configuration
type Config struct {
	Driver     string    `yaml:"driver"`
	Routers    []string  `yaml:"routers"`
	Switches   []string  `yaml:"switches"`
	UserVlans  []string  `yaml:"user_vlans"`
	DNSServers []string  `yaml:"dns_servers"`
	SSH        SSHConfig `yaml:"ssh"`
	ReportDir  string    `yaml:"report_dir"`
	BackupDir  string    `yaml:"backup_dir"`
}

// New returns unmarshaled data structure of user provided config
// merged over defaults
func New(confPath string) (*Config, error) {
	var config Config

	raw, err := os.ReadFile(confPath)

	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(raw, &config); err != nil {
		return nil, err
	}

	if err := mergo.Merge(&config, Default()); err != nil {
		return nil, err
	}

	return &config, nil
}

// Default returns a configuration with usable defaults for
// everything except the device and dns lists
func Default() *Config {
	return &Config{
		Driver:     "ssh",
		Routers:    []string{},
		Switches:   []string{},
		UserVlans:  []string{},
		DNSServers: []string{},
		SSH: SSHConfig{
			User:      os.Getenv("USER"),
			Port:      "22",
			Overrides: []SSHOverride{},
		},
		ReportDir: "reports",
		BackupDir: "config-backups",
	}
}

// Write writes a config back out as yaml
func Write(conf Config, confPath string) error {
	file, err := os.Create(confPath)

	if err != nil {
		return err
	}

	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	return encoder.Encode(conf)
}

// SwitchTargets returns the configured switch list with any
// CIDR entries expanded to individual addresses
func (c *Config) SwitchTargets() ([]string, error) {
	ipList := []string{}

	for _, t := range c.Switches {
		if cidrSuffix.MatchString(t) {
			ips, err := mapcidr.IPAddresses(t)

			if err != nil {
				return nil, err
			}

			ipList = append(ipList, ips...)
		} else {
			ipList = append(ipList, t)
		}
	}

	return ipList, nil
}

// CredsFor returns user, password, and port for a device ip
// after applying any matching override
func (c *Config) CredsFor(ip string) (string, string, string) {
	user := c.SSH.User
	password := c.SSH.Password
	port := c.SSH.Port

	for _, o := range c.SSH.Overrides {
		if o.Target == ip {
			if o.User != "" {
				user = o.User
			}

			if o.Password != "" {
				password = o.Password
			}

			if o.Port != "" {
				port = o.Port
			}
		}
	}

	return user, password, port
}
