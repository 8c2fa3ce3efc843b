package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVParser handles tabular transcript exports (speaker, utterance rows, as
// produced by several meeting platforms). Each row becomes one
// "Speaker: utterance" line.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*Transcript, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	rows := records
	if len(rows) > 0 && looksLikeHeader(rows[0]) {
		rows = rows[1:]
	}

	var lines []string
	for _, row := range rows {
		line := formatRow(row)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return &Transcript{
		Title: titleFromFilename(filename),
		Text:  strings.Join(lines, "\n\n"),
	}, nil
}

// looksLikeHeader detects the common "speaker,text" style header row.
func looksLikeHeader(row []string) bool {
	for _, cell := range row {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "speaker", "name", "text", "utterance", "transcript", "timestamp", "time":
			return true
		}
	}
	return false
}

func formatRow(row []string) string {
	var cells []string
	for _, c := range row {
		c = strings.TrimSpace(c)
		if c != "" {
			cells = append(cells, c)
		}
	}
	switch len(cells) {
	case 0:
		return ""
	case 1:
		return cells[0]
	default:
		return cells[0] + ": " + strings.Join(cells[1:], " ")
	}
}
