package inventory_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"portscribe/internal/exception"
	"portscribe/internal/inventory"
	"portscribe/internal/test_util"
)

func TestPortSqliteRepo(t *testing.T) {
	testDBFile := "inventory.db"

	defer func() {
		os.RemoveAll(testDBFile)
	}()

	db, err := test_util.GetDBConnection(testDBFile)

	if err != nil {
		t.Logf("failed to create test db: %s", err.Error())
		t.FailNow()
	}

	if err := test_util.Migrate(db, inventory.PortModel{}); err != nil {
		t.Logf("failed to migrate test db: %s", err.Error())
		t.FailNow()
	}

	repo := inventory.NewSqliteRepo(db)

	newPort := &inventory.Port{
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
		LastSeen:    time.Now().UTC().Truncate(time.Second),
	}

	t.Run("GetByID returns record not found error", func(st *testing.T) {
		_, err := repo.GetByID("noop")

		assert.Error(st, err)
		assert.Equal(st, exception.ErrRecordNotFound, err)
	})

	t.Run("adds port", func(st *testing.T) {
		created, err := repo.Add(newPort)

		assert.NoError(st, err)
		assert.Equal(st, newPort, created)
	})

	t.Run("gets port by id", func(st *testing.T) {
		found, err := repo.GetByID(newPort.ID)

		assert.NoError(st, err)
		assert.Equal(st, newPort, found)
	})

	t.Run("gets ports by switch", func(st *testing.T) {
		found, err := repo.GetBySwitch("10.0.1.10")

		assert.NoError(st, err)
		assert.Equal(st, 1, len(found))
		assert.Equal(st, newPort, found[0])
	})

	t.Run("gets all ports", func(st *testing.T) {
		found, err := repo.GetAll()

		assert.NoError(st, err)
		assert.Equal(st, 1, len(found))
		assert.Equal(st, newPort, found[0])
	})

	t.Run("updates port", func(st *testing.T) {
		toUpdate := *newPort
		toUpdate.Description = "ws-0200"
		toUpdate.Hostname = "ws-0200.corp.example.com"

		updated, err := repo.Update(&toUpdate)

		assert.NoError(st, err)
		assert.Equal(st, "ws-0200", updated.Description)
	})

	t.Run("removes port", func(st *testing.T) {
		err := repo.Remove(newPort.ID)

		assert.NoError(st, err)

		found, err := repo.GetByID(newPort.ID)

		assert.Nil(st, found)
		assert.Error(st, err)
		assert.Equal(st, exception.ErrRecordNotFound, err)
	})
}
