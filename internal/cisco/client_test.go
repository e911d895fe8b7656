package cisco_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"portscribe/internal/cisco"
	mock_device "portscribe/internal/mock/device"
)

func TestSwitchClient(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockRunner := mock_device.NewMockRunner(ctrl)

	client := cisco.NewSwitch("10.0.1.10", mockRunner)

	ctx := context.Background()

	t.Run("lists interfaces", func(st *testing.T) {
		mockRunner.EXPECT().
			Run(ctx, "show interfaces status").
			Return(statusOutput, nil)

		interfaces, err := client.Interfaces(ctx)

		assert.NoError(st, err)
		assert.Equal(st, 5, len(interfaces))
	})

	t.Run("reads mac table for a vlan", func(st *testing.T) {
		mockRunner.EXPECT().
			Run(ctx, "show mac address-table vlan 10").
			Return(macOutput, nil)

		entries, err := client.MacTable(ctx, "10")

		assert.NoError(st, err)
		assert.Equal(st, 3, len(entries))
	})

	t.Run("sets description through config mode", func(st *testing.T) {
		mockRunner.EXPECT().
			RunConfig(ctx, []string{
				"interface Gi1/0/1",
				"description ws-0113",
			}).
			Return("", nil)

		err := client.SetDescription(ctx, "Gi1/0/1", "ws-0113")

		assert.NoError(st, err)
	})

	t.Run("saves startup config", func(st *testing.T) {
		mockRunner.EXPECT().
			Run(ctx, "write memory").
			Return("Building configuration...\n[OK]", nil)

		err := client.WriteMemory(ctx)

		assert.NoError(st, err)
	})

	t.Run("closes underlying runner", func(st *testing.T) {
		mockRunner.EXPECT().Close()

		assert.NoError(st, client.Close())
	})
}

func TestRouterClient(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockRunner := mock_device.NewMockRunner(ctrl)

	client := cisco.NewRouter("10.0.0.1", mockRunner)

	mockRunner.EXPECT().
		Run(gomock.Any(), "show ip arp").
		Return(arpOutput, nil)

	entries, err := client.ArpTable(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, len(entries))
}
