package inventory

import (
	"errors"

	"portscribe/internal/exception"
	"portscribe/internal/logger"
)

// PortService represents our inventory.Service implementation
type PortService struct {
	log  logger.Logger
	repo Repo
}

// NewService returns a new instance of PortService
func NewService(repo Repo) *PortService {
	return &PortService{
		log:  logger.New(),
		repo: repo,
	}
}

// GetAll returns all ports from the database
func (s *PortService) GetAll() ([]*Port, error) {
	return s.repo.GetAll()
}

// GetBySwitch returns all ports recorded for a switch
func (s *PortService) GetBySwitch(switchIP string) ([]*Port, error) {
	return s.repo.GetBySwitch(switchIP)
}

// AddOrUpdate adds or updates a port record
func (s *PortService) AddOrUpdate(port *Port) error {
	if port.ID == "" {
		port.ID = PortID(port.Switch, port.Name)
	}

	_, err := s.repo.GetByID(port.ID)

	if errors.Is(err, exception.ErrRecordNotFound) {
		// handle add case
		if _, err2 := s.repo.Add(port); err2 != nil {
			return err2
		}

		return nil
	}

	if err != nil {
		// handle all other errors
		return err
	}

	// handle update case
	_, err = s.repo.Update(port)

	return err
}

// Remove deletes a port record
func (s *PortService) Remove(id string) error {
	return s.repo.Remove(id)
}
