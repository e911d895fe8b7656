package pipeline

import (
	"context"

	"portscribe/internal/cisco"
	"portscribe/internal/inventory"
)

//go:generate mockgen -destination=../mock/pipeline/mock_pipeline.go -package=mock_pipeline . SwitchClient,RouterClient

// Labels pushed onto interfaces for the fixed outcomes
const (
	LabelDisabled  = "Disabled by Admin"
	LabelMultiUser = "Multi User"
)

// SwitchClient is the view of a switch session the pipeline needs
type SwitchClient interface {
	Interfaces(ctx context.Context) ([]cisco.Interface, error)
	MacTable(ctx context.Context, vlan string) ([]cisco.MacEntry, error)
	SetDescription(ctx context.Context, port, description string) error
	RunningConfig(ctx context.Context) (string, error)
	WriteMemory(ctx context.Context) error
	Close() error
}

// RouterClient is the view of a router session the pipeline needs
type RouterClient interface {
	ArpTable(ctx context.Context) ([]cisco.ArpEntry, error)
	Close() error
}

// SwitchDialer opens a session to a switch
type SwitchDialer func(ip string) (SwitchClient, error)

// RouterDialer opens a session to a router
type RouterDialer func(ip string) (RouterClient, error)

// Change is one planned (or skipped) description update
type Change struct {
	Switch         string
	Port           string
	Vlan           string
	Status         cisco.LinkStatus
	Macs           []string
	IP             string
	Hostname       string
	OldDescription string
	NewDescription string
	Outcome        inventory.Outcome
	Reason         string
}

// NeedsWrite reports whether applying this change touches the device
func (c *Change) NeedsWrite() bool {
	return c.NewDescription != "" && c.NewDescription != c.OldDescription
}

// Exception reports whether this change belongs in the exceptions
// report
func (c *Change) Exception() bool {
	return c.Outcome == inventory.OutcomeUnchanged && c.Reason != ""
}
