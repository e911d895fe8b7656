package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"portscribe/internal/inventory"
	"portscribe/internal/logger"
	"portscribe/internal/pipeline"
)

var header = []string{
	"Switch IP",
	"Interface",
	"MAC address",
	"IP address",
	"User",
	"Outcome",
}

// Reporter writes run reports into a directory, one timestamped file
// per report per run
type Reporter struct {
	dir string
	log logger.Logger
}

// NewReporter returns a reporter writing into dir, creating it when
// needed
func NewReporter(dir string) (*Reporter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &Reporter{
		dir: dir,
		log: logger.New(),
	}, nil
}

// WriteCSV writes all ports to a csv file and returns its path
func (r *Reporter) WriteCSV(ports []*inventory.Port) (string, error) {
	filename := path.Join(r.dir, timestamp()+"-ports.csv")

	file, err := os.Create(filename)

	if err != nil {
		return "", err
	}

	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, port := range ports {
		if err := writer.Write(row(port)); err != nil {
			return "", err
		}
	}

	r.log.Info().Str("file", filename).Msg("csv report written")

	return filename, nil
}

// WriteXLSX writes all ports to an xlsx file with one sheet per
// switch and returns its path
func (r *Reporter) WriteXLSX(ports []*inventory.Port) (string, error) {
	filename := path.Join(r.dir, timestamp()+"-ports.xlsx")

	workbook := excelize.NewFile()
	defer workbook.Close()

	rowsBySwitch := map[string]int{}

	for _, port := range ports {
		sheet := port.Switch

		if _, ok := rowsBySwitch[sheet]; !ok {
			if _, err := workbook.NewSheet(sheet); err != nil {
				return "", err
			}

			cell, _ := excelize.CoordinatesToCellName(1, 1)

			if err := workbook.SetSheetRow(sheet, cell, &header); err != nil {
				return "", err
			}

			rowsBySwitch[sheet] = 2
		}

		cell, _ := excelize.CoordinatesToCellName(1, rowsBySwitch[sheet])
		values := row(port)

		if err := workbook.SetSheetRow(sheet, cell, &values); err != nil {
			return "", err
		}

		rowsBySwitch[sheet]++
	}

	// drop the default sheet so only switch sheets remain
	if len(rowsBySwitch) > 0 {
		if err := workbook.DeleteSheet("Sheet1"); err != nil {
			return "", err
		}
	}

	if err := workbook.SaveAs(filename); err != nil {
		return "", err
	}

	r.log.Info().Str("file", filename).Msg("xlsx report written")

	return filename, nil
}

// WriteExceptions writes one line per change that was skipped with a
// reason and returns the path and line count. No file is written when
// there are no exceptions.
func (r *Reporter) WriteExceptions(changes []*pipeline.Change) (string, int, error) {
	lines := []string{}

	for _, change := range changes {
		if !change.Exception() {
			continue
		}

		line := fmt.Sprintf("%s %s: %s", change.Switch, change.Port, change.Reason)

		if len(change.Macs) > 0 {
			line = fmt.Sprintf("%s (%s)", line, strings.Join(change.Macs, " "))
		}

		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return "", 0, nil
	}

	filename := path.Join(r.dir, timestamp()+"-exceptions.txt")

	contents := strings.Join(lines, "\n") + "\n"

	if err := os.WriteFile(filename, []byte(contents), 0644); err != nil {
		return "", 0, err
	}

	r.log.Info().
		Str("file", filename).
		Int("count", len(lines)).
		Msg("exceptions report written")

	return filename, len(lines), nil
}

func row(port *inventory.Port) []string {
	return []string{
		port.Switch,
		port.Name,
		strings.Join(port.Macs, " "),
		port.IP,
		port.Description,
		string(port.Outcome),
	}
}

func timestamp() string {
	return time.Now().Format("2006-01-02-15-04-05")
}
