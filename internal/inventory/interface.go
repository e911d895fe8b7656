package inventory

import "time"

//go:generate mockgen -destination=../mock/inventory/mock_inventory.go -package=mock_inventory . Repo,Service

// Outcome is the decision applied to a port during a run
type Outcome string

const (
	OutcomeDisabled  Outcome = "disabled-by-admin"
	OutcomeMultiUser Outcome = "multi-user"
	OutcomeResolved  Outcome = "resolved"
	OutcomeUnchanged Outcome = "unchanged"
)

// Port is the persisted record of a switch port as of the last run
type Port struct {
	ID          string
	Switch      string
	Name        string
	Vlan        string
	Status      string
	Macs        []string
	IP          string
	Hostname    string
	Description string
	Outcome     Outcome
	LastSeen    time.Time
}

// Repo interface representing access to stored ports
type Repo interface {
	GetAll() ([]*Port, error)
	GetBySwitch(switchIP string) ([]*Port, error)
	GetByID(id string) (*Port, error)
	Add(port *Port) (*Port, error)
	Update(port *Port) (*Port, error)
	Remove(id string) error
}

// Service interface for manipulating the port inventory
type Service interface {
	GetAll() ([]*Port, error)
	GetBySwitch(switchIP string) ([]*Port, error)
	AddOrUpdate(port *Port) error
	Remove(id string) error
}
