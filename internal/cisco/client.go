package cisco

import (
	"context"
	"fmt"

	"portscribe/internal/device"
)

// Switch is a CLI client for an access switch
type Switch struct {
	IP     string
	runner device.Runner
}

// NewSwitch returns a switch client backed by the given runner
func NewSwitch(ip string, runner device.Runner) *Switch {
	return &Switch{IP: ip, runner: runner}
}

// Interfaces lists all ports with status, access vlan, and current
// description
func (s *Switch) Interfaces(ctx context.Context) ([]Interface, error) {
	out, err := s.runner.Run(ctx, "show interfaces status")

	if err != nil {
		return nil, err
	}

	return ParseInterfaceStatus(out), nil
}

// MacTable returns the learned mac entries for a vlan
func (s *Switch) MacTable(ctx context.Context, vlan string) ([]MacEntry, error) {
	out, err := s.runner.Run(ctx, fmt.Sprintf("show mac address-table vlan %s", vlan))

	if err != nil {
		return nil, err
	}

	return ParseMacTable(out), nil
}

// SetDescription pushes a description onto a port
func (s *Switch) SetDescription(ctx context.Context, port, description string) error {
	_, err := s.runner.RunConfig(ctx, []string{
		fmt.Sprintf("interface %s", port),
		fmt.Sprintf("description %s", description),
	})

	return err
}

// RunningConfig returns the device running configuration
func (s *Switch) RunningConfig(ctx context.Context) (string, error) {
	return s.runner.Run(ctx, "show running-config")
}

// WriteMemory copies running-config to startup-config
func (s *Switch) WriteMemory(ctx context.Context) error {
	_, err := s.runner.Run(ctx, "write memory")
	return err
}

// Close closes the underlying session
func (s *Switch) Close() error {
	return s.runner.Close()
}

// Router is a CLI client for the gateway router
type Router struct {
	IP     string
	runner device.Runner
}

// NewRouter returns a router client backed by the given runner
func NewRouter(ip string, runner device.Runner) *Router {
	return &Router{IP: ip, runner: runner}
}

// ArpTable returns the router's arp table
func (r *Router) ArpTable(ctx context.Context) ([]ArpEntry, error) {
	out, err := r.runner.Run(ctx, "show ip arp")

	if err != nil {
		return nil, err
	}

	return ParseArpTable(out), nil
}

// Close closes the underlying session
func (r *Router) Close() error {
	return r.runner.Close()
}
