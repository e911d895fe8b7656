package report_test

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"portscribe/internal/inventory"
	"portscribe/internal/pipeline"
	"portscribe/internal/report"
)

func testPorts() []*inventory.Port {
	return []*inventory.Port{
		{
			Switch:      "10.0.1.10",
			Name:        "Gi1/0/1",
			Vlan:        "10",
			Status:      "connected",
			Macs:        []string{"aabb.cc00.0001"},
			IP:          "10.0.10.21",
			Hostname:    "ws-0113.corp.example.com",
			Description: "ws-0113",
			Outcome:     inventory.OutcomeResolved,
		},
		{
			Switch:      "10.0.1.11",
			Name:        "Gi1/0/2",
			Vlan:        "10",
			Status:      "disabled",
			Description: "Disabled by Admin",
			Outcome:     inventory.OutcomeDisabled,
		},
	}
}

func TestReporter(t *testing.T) {
	dir := t.TempDir()

	reporter, err := report.NewReporter(dir)

	assert.NoError(t, err)

	t.Run("writes csv with a header and one row per port", func(st *testing.T) {
		filename, err := reporter.WriteCSV(testPorts())

		assert.NoError(st, err)

		file, err := os.Open(filename)

		assert.NoError(st, err)

		defer file.Close()

		records, err := csv.NewReader(file).ReadAll()

		assert.NoError(st, err)
		assert.Equal(st, 3, len(records))
		assert.Equal(st, "Switch IP", records[0][0])
		assert.Equal(st, "10.0.1.10", records[1][0])
		assert.Equal(st, "Gi1/0/1", records[1][1])
		assert.Equal(st, "ws-0113", records[1][4])
		assert.Equal(st, "Disabled by Admin", records[2][4])
	})

	t.Run("writes xlsx with one sheet per switch", func(st *testing.T) {
		filename, err := reporter.WriteXLSX(testPorts())

		assert.NoError(st, err)

		workbook, err := excelize.OpenFile(filename)

		assert.NoError(st, err)

		defer workbook.Close()

		sheets := workbook.GetSheetList()

		assert.Contains(st, sheets, "10.0.1.10")
		assert.Contains(st, sheets, "10.0.1.11")
		assert.NotContains(st, sheets, "Sheet1")

		value, err := workbook.GetCellValue("10.0.1.10", "B2")

		assert.NoError(st, err)
		assert.Equal(st, "Gi1/0/1", value)
	})

	t.Run("writes one exception line per skipped port", func(st *testing.T) {
		changes := []*pipeline.Change{
			{
				Switch:  "10.0.1.10",
				Port:    "Gi1/0/3",
				Macs:    []string{"aabb.cc00.0003", "aabb.cc00.0004"},
				Outcome: inventory.OutcomeUnchanged,
				Reason:  "multiple macs on port with existing description",
			},
			{
				Switch:  "10.0.1.10",
				Port:    "Gi1/0/1",
				Outcome: inventory.OutcomeResolved,
			},
		}

		filename, count, err := reporter.WriteExceptions(changes)

		assert.NoError(st, err)
		assert.Equal(st, 1, count)

		data, err := os.ReadFile(filename)

		assert.NoError(st, err)

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")

		assert.Equal(st, 1, len(lines))
		assert.Contains(st, lines[0], "Gi1/0/3")
		assert.Contains(st, lines[0], "aabb.cc00.0003")
	})

	t.Run("skips the exceptions file when there are none", func(st *testing.T) {
		filename, count, err := reporter.WriteExceptions([]*pipeline.Change{
			{Switch: "10.0.1.10", Port: "Gi1/0/1", Outcome: inventory.OutcomeResolved},
		})

		assert.NoError(st, err)
		assert.Equal(st, 0, count)
		assert.Equal(st, "", filename)
	})
}
