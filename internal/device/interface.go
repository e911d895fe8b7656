package device

import "context"

//go:generate mockgen -destination=../mock/device/mock_device.go -package=mock_device . Runner

// Supported device drivers
const (
	DriverSSH     = "ssh"
	DriverAnsible = "ansible"
)

// Runner runs commands on a remote network device
type Runner interface {
	// Run executes a single exec-mode command and returns its output
	Run(ctx context.Context, command string) (string, error)
	// RunConfig enters configuration mode, applies commands in order,
	// and returns the combined session output
	RunConfig(ctx context.Context, commands []string) (string, error)
	Close() error
}

// Factory opens a Runner for a device ip
type Factory func(ip string) (Runner, error)
