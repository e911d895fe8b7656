package inventory_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"portscribe/internal/exception"
	"portscribe/internal/inventory"
	mock_inventory "portscribe/internal/mock/inventory"
)

func TestPortService(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockRepo := mock_inventory.NewMockRepo(ctrl)

	service := inventory.NewService(mockRepo)

	testPort := &inventory.Port{
		ID:          inventory.PortID("10.0.1.10", "Gi1/0/1"),
		Switch:      "10.0.1.10",
		Name:        "Gi1/0/1",
		Vlan:        "10",
		Status:      "connected",
		Macs:        []string{"aabb.cc00.0100"},
		IP:          "10.0.0.10",
		Hostname:    "ws-0113.corp.example.com",
		Description: "ws-0113",
		Outcome:     inventory.OutcomeResolved,
		LastSeen:    time.Now().UTC(),
	}

	t.Run("gets all ports", func(st *testing.T) {
		expected := []*inventory.Port{testPort}

		mockRepo.EXPECT().GetAll().Return(expected, nil)

		found, err := service.GetAll()

		assert.NoError(st, err)
		assert.Equal(st, expected, found)
	})

	t.Run("gets ports by switch", func(st *testing.T) {
		expected := []*inventory.Port{testPort}

		mockRepo.EXPECT().GetBySwitch("10.0.1.10").Return(expected, nil)

		found, err := service.GetBySwitch("10.0.1.10")

		assert.NoError(st, err)
		assert.Equal(st, expected, found)
	})

	t.Run("adds port", func(st *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any()).Return(nil, exception.ErrRecordNotFound)
		mockRepo.EXPECT().Add(testPort)

		err := service.AddOrUpdate(testPort)

		assert.NoError(st, err)
	})

	t.Run("updates port", func(st *testing.T) {
		toUpdate := *testPort
		toUpdate.Description = "ws-0200"

		mockRepo.EXPECT().GetByID(gomock.Any()).Return(testPort, nil)
		mockRepo.EXPECT().Update(&toUpdate)

		err := service.AddOrUpdate(&toUpdate)

		assert.NoError(st, err)
	})

	t.Run("fills in id when missing", func(st *testing.T) {
		noID := *testPort
		noID.ID = ""

		mockRepo.EXPECT().GetByID(testPort.ID).Return(nil, exception.ErrRecordNotFound)
		mockRepo.EXPECT().Add(gomock.Any())

		err := service.AddOrUpdate(&noID)

		assert.NoError(st, err)
		assert.Equal(st, testPort.ID, noID.ID)
	})

	t.Run("removes port", func(st *testing.T) {
		mockRepo.EXPECT().Remove(testPort.ID).Return(nil)

		err := service.Remove(testPort.ID)

		assert.NoError(st, err)
	})
}
