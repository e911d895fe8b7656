package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"portscribe/internal/cisco"
	"portscribe/internal/config"
	"portscribe/internal/exception"
	"portscribe/internal/inventory"
	mock_dns "portscribe/internal/mock/dns"
	mock_inventory "portscribe/internal/mock/inventory"
	mock_pipeline "portscribe/internal/mock/pipeline"
	"portscribe/internal/pipeline"
)

func testConf() config.Config {
	conf := config.Default()
	conf.Routers = []string{"10.0.0.1"}
	conf.Switches = []string{"10.0.1.10"}
	conf.UserVlans = []string{"10"}
	conf.DNSServers = []string{"10.0.0.53"}
	return *conf
}

func TestPlan(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockSwitch := mock_pipeline.NewMockSwitchClient(ctrl)
	mockResolver := mock_dns.NewMockResolver(ctrl)
	mockPorts := mock_inventory.NewMockService(ctrl)

	switchDial := func(ip string) (pipeline.SwitchClient, error) {
		return mockSwitch, nil
	}

	routerDial := func(ip string) (pipeline.RouterClient, error) {
		return nil, errors.New("unused")
	}

	p := pipeline.New(testConf(), switchDial, routerDial, mockResolver, mockPorts)

	interfaces := []cisco.Interface{
		{Name: "Gi1/0/1", Status: cisco.StatusConnected, Vlan: "10"},
		{Name: "Gi1/0/2", Status: cisco.StatusDisabled, Vlan: "10"},
		{Name: "Gi1/0/3", Status: cisco.StatusConnected, Vlan: "10", Description: "printer-room"},
		{Name: "Gi1/0/4", Status: cisco.StatusConnected, Vlan: "10"},
		{Name: "Gi1/0/5", Status: cisco.StatusConnected, Vlan: "10"},
		{Name: "Gi1/0/6", Status: cisco.StatusConnected, Vlan: "10"},
		{Name: "Gi1/0/7", Status: cisco.StatusConnected, Vlan: "10"},
		{Name: "Gi1/0/24", Status: cisco.StatusConnected, Vlan: "trunk"},
	}

	macEntries := []cisco.MacEntry{
		{Vlan: "10", Mac: "aabb.cc00.0001", Port: "Gi1/0/1"},
		// learned macs on a disabled port must not matter
		{Vlan: "10", Mac: "aabb.cc00.0002", Port: "Gi1/0/2"},
		{Vlan: "10", Mac: "aabb.cc00.0003", Port: "Gi1/0/3"},
		{Vlan: "10", Mac: "aabb.cc00.0004", Port: "Gi1/0/3"},
		{Vlan: "10", Mac: "aabb.cc00.0005", Port: "Gi1/0/4"},
		{Vlan: "10", Mac: "aabb.cc00.0006", Port: "Gi1/0/4"},
		{Vlan: "10", Mac: "aabb.cc00.0007", Port: "Gi1/0/5"},
		{Vlan: "10", Mac: "aabb.cc00.0008", Port: "Gi1/0/6"},
		// trunk port is not an access port and is excluded entirely
		{Vlan: "10", Mac: "aabb.cc00.0009", Port: "Gi1/0/24"},
	}

	arp := map[string]string{
		"aabb.cc00.0001": "10.0.0.10",
		"aabb.cc00.0008": "10.0.0.18",
	}

	mockSwitch.EXPECT().Interfaces(gomock.Any()).Return(interfaces, nil)
	mockSwitch.EXPECT().MacTable(gomock.Any(), "10").Return(macEntries, nil)
	mockSwitch.EXPECT().Close()

	mockResolver.EXPECT().
		Reverse(gomock.Any(), "10.0.0.10").
		Return("ws-0113.corp.example.com", nil)
	mockResolver.EXPECT().
		Reverse(gomock.Any(), "10.0.0.18").
		Return("", exception.ErrHostNotFound)

	mockPorts.EXPECT().AddOrUpdate(gomock.Any()).Return(nil).Times(7)

	changes, err := p.Plan(context.Background(), []string{"10.0.1.10"}, arp)

	assert.NoError(t, err)
	assert.Equal(t, 7, len(changes))

	byPort := map[string]*pipeline.Change{}

	for _, c := range changes {
		byPort[c.Port] = c
	}

	t.Run("single mac resolves to hostname", func(st *testing.T) {
		c := byPort["Gi1/0/1"]

		assert.Equal(st, inventory.OutcomeResolved, c.Outcome)
		assert.Equal(st, "10.0.0.10", c.IP)
		assert.Equal(st, "ws-0113.corp.example.com", c.Hostname)
		assert.Equal(st, "ws-0113", c.NewDescription)
		assert.True(st, c.NeedsWrite())
	})

	t.Run("down port labeled regardless of mac table", func(st *testing.T) {
		c := byPort["Gi1/0/2"]

		assert.Equal(st, inventory.OutcomeDisabled, c.Outcome)
		assert.Equal(st, pipeline.LabelDisabled, c.NewDescription)
	})

	t.Run("multi mac with description left unchanged", func(st *testing.T) {
		c := byPort["Gi1/0/3"]

		assert.Equal(st, inventory.OutcomeUnchanged, c.Outcome)
		assert.Equal(st, "", c.NewDescription)
		assert.False(st, c.NeedsWrite())
		assert.True(st, c.Exception())
	})

	t.Run("multi mac without description labeled multi user", func(st *testing.T) {
		c := byPort["Gi1/0/4"]

		assert.Equal(st, inventory.OutcomeMultiUser, c.Outcome)
		assert.Equal(st, pipeline.LabelMultiUser, c.NewDescription)
	})

	t.Run("arp miss left unchanged with exception", func(st *testing.T) {
		c := byPort["Gi1/0/5"]

		assert.Equal(st, inventory.OutcomeUnchanged, c.Outcome)
		assert.True(st, c.Exception())
	})

	t.Run("dns miss left unchanged with exception", func(st *testing.T) {
		c := byPort["Gi1/0/6"]

		assert.Equal(st, inventory.OutcomeUnchanged, c.Outcome)
		assert.Equal(st, "10.0.0.18", c.IP)
		assert.True(st, c.Exception())
	})

	t.Run("idle port left unchanged without exception", func(st *testing.T) {
		c := byPort["Gi1/0/7"]

		assert.Equal(st, inventory.OutcomeUnchanged, c.Outcome)
		assert.False(st, c.Exception())
	})

	t.Run("trunk port excluded", func(st *testing.T) {
		assert.Nil(st, byPort["Gi1/0/24"])
	})
}

func TestPlanUnreachableSwitch(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockResolver := mock_dns.NewMockResolver(ctrl)
	mockPorts := mock_inventory.NewMockService(ctrl)

	switchDial := func(ip string) (pipeline.SwitchClient, error) {
		return nil, errors.New("connection refused")
	}

	routerDial := func(ip string) (pipeline.RouterClient, error) {
		return nil, errors.New("unused")
	}

	p := pipeline.New(testConf(), switchDial, routerDial, mockResolver, mockPorts)

	changes, err := p.Plan(context.Background(), []string{"10.0.1.10"}, map[string]string{})

	assert.NoError(t, err)
	assert.Equal(t, 1, len(changes))
	assert.True(t, changes[0].Exception())
	assert.Equal(t, "switch unreachable", changes[0].Reason)
}

func TestCollectArp(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockRouter := mock_pipeline.NewMockRouterClient(ctrl)
	mockResolver := mock_dns.NewMockResolver(ctrl)
	mockPorts := mock_inventory.NewMockService(ctrl)

	conf := testConf()
	conf.Routers = []string{"10.0.0.1", "10.0.0.2"}

	switchDial := func(ip string) (pipeline.SwitchClient, error) {
		return nil, errors.New("unused")
	}

	dialed := []string{}

	routerDial := func(ip string) (pipeline.RouterClient, error) {
		dialed = append(dialed, ip)

		if ip == "10.0.0.1" {
			return nil, errors.New("connection refused")
		}

		return mockRouter, nil
	}

	p := pipeline.New(conf, switchDial, routerDial, mockResolver, mockPorts)

	mockRouter.EXPECT().ArpTable(gomock.Any()).Return([]cisco.ArpEntry{
		{IP: "10.0.0.10", Mac: "aabb.cc00.0001"},
		{IP: "10.0.0.11", Mac: "aabb.cc00.0002"},
	}, nil)
	mockRouter.EXPECT().Close()

	arp, err := p.CollectArp(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, dialed)
	assert.Equal(t, "10.0.0.10", arp["aabb.cc00.0001"])
	assert.Equal(t, "10.0.0.11", arp["aabb.cc00.0002"])
}

func TestCollectArpNoRouters(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockResolver := mock_dns.NewMockResolver(ctrl)
	mockPorts := mock_inventory.NewMockService(ctrl)

	switchDial := func(ip string) (pipeline.SwitchClient, error) {
		return nil, errors.New("unused")
	}

	routerDial := func(ip string) (pipeline.RouterClient, error) {
		return nil, errors.New("connection refused")
	}

	p := pipeline.New(testConf(), switchDial, routerDial, mockResolver, mockPorts)

	_, err := p.CollectArp(context.Background())

	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockSwitch := mock_pipeline.NewMockSwitchClient(ctrl)
	mockResolver := mock_dns.NewMockResolver(ctrl)
	mockPorts := mock_inventory.NewMockService(ctrl)

	switchDial := func(ip string) (pipeline.SwitchClient, error) {
		return mockSwitch, nil
	}

	routerDial := func(ip string) (pipeline.RouterClient, error) {
		return nil, errors.New("unused")
	}

	p := pipeline.New(testConf(), switchDial, routerDial, mockResolver, mockPorts)

	changes := []*pipeline.Change{
		{
			Switch:         "10.0.1.10",
			Port:           "Gi1/0/1",
			NewDescription: "ws-0113",
			Outcome:        inventory.OutcomeResolved,
		},
		{
			Switch:         "10.0.1.10",
			Port:           "Gi1/0/2",
			NewDescription: pipeline.LabelDisabled,
			Outcome:        inventory.OutcomeDisabled,
		},
		// unchanged outcome must not touch the device
		{
			Switch:  "10.0.1.10",
			Port:    "Gi1/0/3",
			Outcome: inventory.OutcomeUnchanged,
			Reason:  "multiple macs on port with existing description",
		},
		// already correct description must not be rewritten
		{
			Switch:         "10.0.1.10",
			Port:           "Gi1/0/4",
			OldDescription: "ws-0200",
			NewDescription: "ws-0200",
			Outcome:        inventory.OutcomeResolved,
		},
	}

	backupDir := t.TempDir()

	mockSwitch.EXPECT().RunningConfig(gomock.Any()).Return("hostname acc-sw-01\n", nil)
	mockSwitch.EXPECT().SetDescription(gomock.Any(), "Gi1/0/1", "ws-0113").Return(nil)
	mockSwitch.EXPECT().SetDescription(gomock.Any(), "Gi1/0/2", pipeline.LabelDisabled).Return(nil)
	mockSwitch.EXPECT().WriteMemory(gomock.Any()).Return(nil)
	mockSwitch.EXPECT().Close()

	err := p.Apply(context.Background(), changes, pipeline.ApplyOptions{
		BackupDir:    backupDir,
		WriteStartup: true,
	})

	assert.NoError(t, err)
}
