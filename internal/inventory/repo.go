package inventory

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portscribe/internal/exception"
)

// PortModel is the gorm model backing Port
type PortModel struct {
	ID          string `gorm:"primaryKey"`
	Switch      string
	Name        string
	Vlan        string
	Status      string
	Macs        datatypes.JSON
	IP          string
	Hostname    string
	Description string
	Outcome     string
	LastSeen    int64
}

// PortID derives a stable record id from switch ip and port name
func PortID(switchIP, portName string) string {
	hashed := sha1.Sum([]byte(switchIP + "|" + portName))
	return hex.EncodeToString(hashed[:])
}

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteRepo returns a new inventory sqlite repo
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{db: db}
}

// GetAll returns all ports from the database
func (r *SqliteRepo) GetAll() ([]*Port, error) {
	models := []PortModel{}

	if result := r.db.Order("switch, name").Find(&models); result.Error != nil {
		return nil, result.Error
	}

	ports := []*Port{}

	for _, m := range models {
		p, err := modelToPort(&m)

		if err != nil {
			return nil, err
		}

		ports = append(ports, p)
	}

	return ports, nil
}

// GetBySwitch returns all ports recorded for a switch
func (r *SqliteRepo) GetBySwitch(switchIP string) ([]*Port, error) {
	models := []PortModel{}

	result := r.db.Where("switch = ?", switchIP).Order("name").Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	ports := []*Port{}

	for _, m := range models {
		p, err := modelToPort(&m)

		if err != nil {
			return nil, err
		}

		ports = append(ports, p)
	}

	return ports, nil
}

// GetByID returns a single port record
func (r *SqliteRepo) GetByID(id string) (*Port, error) {
	if id == "" {
		return nil, errors.New("port id cannot be empty")
	}

	model := PortModel{ID: id}

	if result := r.db.First(&model); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return modelToPort(&model)
}

// Add creates a new port record
func (r *SqliteRepo) Add(port *Port) (*Port, error) {
	if port.ID == "" {
		return nil, errors.New("port id cannot be empty")
	}

	model, err := portToModel(port)

	if err != nil {
		return nil, err
	}

	if result := r.db.Create(model); result.Error != nil {
		return nil, result.Error
	}

	return modelToPort(model)
}

// Update saves an existing port record
func (r *SqliteRepo) Update(port *Port) (*Port, error) {
	if port.ID == "" {
		return nil, errors.New("port id cannot be empty")
	}

	model, err := portToModel(port)

	if err != nil {
		return nil, err
	}

	if result := r.db.Save(model); result.Error != nil {
		return nil, result.Error
	}

	return modelToPort(model)
}

// Remove deletes a port record
func (r *SqliteRepo) Remove(id string) error {
	if id == "" {
		return errors.New("port id cannot be empty")
	}

	return r.db.Delete(&PortModel{ID: id}).Error
}

func timeFromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// helpers
func modelToPort(model *PortModel) (*Port, error) {
	macs := []string{}

	if len(model.Macs) > 0 {
		if err := json.Unmarshal([]byte(model.Macs.String()), &macs); err != nil {
			return nil, err
		}
	}

	return &Port{
		ID:          model.ID,
		Switch:      model.Switch,
		Name:        model.Name,
		Vlan:        model.Vlan,
		Status:      model.Status,
		Macs:        macs,
		IP:          model.IP,
		Hostname:    model.Hostname,
		Description: model.Description,
		Outcome:     Outcome(model.Outcome),
		LastSeen:    timeFromUnix(model.LastSeen),
	}, nil
}

func portToModel(port *Port) (*PortModel, error) {
	macBytes, err := json.Marshal(port.Macs)

	if err != nil {
		return nil, err
	}

	return &PortModel{
		ID:          port.ID,
		Switch:      port.Switch,
		Name:        port.Name,
		Vlan:        port.Vlan,
		Status:      port.Status,
		Macs:        datatypes.JSON(macBytes),
		IP:          port.IP,
		Hostname:    port.Hostname,
		Description: port.Description,
		Outcome:     string(port.Outcome),
		LastSeen:    port.LastSeen.Unix(),
	}, nil
}
