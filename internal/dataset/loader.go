package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"music-insights-go/internal/types"
)

// UserColumnPrefix marks rating columns; the full column name is the user ID.
const UserColumnPrefix = "user_"

// RatingError reports a rating cell that is present but not numeric.
type RatingError struct {
	Row    int // 1-based sheet row
	Column string
	Value  string
}

func (e *RatingError) Error() string {
	return fmt.Sprintf("row %d, column %s: not a numeric rating: %q", e.Row, e.Column, e.Value)
}

// Load reads the rating table from the first sheet of an XLSX workbook. The
// genre column is found by header heuristics; every column whose header starts
// with UserColumnPrefix is a user rating column. Blank rating cells are left
// out of the row's rating map. A non-blank, non-numeric rating cell fails the
// whole load with a *RatingError.
func Load(path string) ([]types.SongRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	header := rows[0]
	genreIdx := -1
	userCols := map[int]string{}
	for i, h := range header {
		name := strings.TrimSpace(h)
		switch {
		case genreIdx == -1 && strings.Contains(strings.ToLower(name), "genre"):
			genreIdx = i
		case strings.HasPrefix(name, UserColumnPrefix):
			userCols[i] = name
		}
	}
	if genreIdx == -1 {
		return nil, fmt.Errorf("no genre column in header")
	}
	if len(userCols) == 0 {
		return nil, fmt.Errorf("no %s* columns in header", UserColumnPrefix)
	}

	out := make([]types.SongRow, 0, len(rows)-1)
	for i, r := range rows {
		if i == 0 {
			continue
		}
		row := types.SongRow{Ratings: map[string]float64{}}
		if genreIdx < len(r) {
			row.Genre = strings.TrimSpace(r[genreIdx])
		}
		for idx, user := range userCols {
			if idx >= len(r) {
				continue
			}
			cell := strings.TrimSpace(r[idx])
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, &RatingError{Row: i + 1, Column: user, Value: cell}
			}
			row.Ratings[user] = v
		}
		out = append(out, row)
	}
	return out, nil
}
