package device_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portscribe/internal/device"
)

func TestCleanOutput(t *testing.T) {
	t.Run("strips echoed command and trailing prompt", func(st *testing.T) {
		raw := "show ip arp\r\n" +
			"Protocol  Address          Age (min)  Hardware Addr   Type   Interface\r\n" +
			"Internet  10.0.0.10               5   aabb.cc00.0100  ARPA   Vlan10\r\n" +
			"core-rtr-01#"

		out := device.CleanOutput("show ip arp", raw)

		assert.NotContains(st, out, "show ip arp")
		assert.NotContains(st, out, "core-rtr-01#")
		assert.Contains(st, out, "Internet  10.0.0.10")
	})

	t.Run("strips config mode prompts", func(st *testing.T) {
		raw := "description someone\r\nacc-sw-01(config-if)# "

		out := device.CleanOutput("description someone", raw)

		assert.Equal(st, "", out)
	})
}

func TestParseAdhocOutput(t *testing.T) {
	t.Run("strips result header", func(st *testing.T) {
		raw := "10.0.0.1 | CHANGED | rc=0 >>\n" +
			"Internet  10.0.0.10               5   aabb.cc00.0100  ARPA   Vlan10\n"

		out := device.ParseAdhocOutput("10.0.0.1", raw)

		assert.Equal(
			st,
			"Internet  10.0.0.10               5   aabb.cc00.0100  ARPA   Vlan10",
			out,
		)
	})

	t.Run("passes through headerless output", func(st *testing.T) {
		out := device.ParseAdhocOutput("10.0.0.1", "plain\n")

		assert.Equal(st, "plain", out)
	})
}
