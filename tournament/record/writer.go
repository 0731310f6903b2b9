package record

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Writer places one JSON log per match plus a summary.csv in its directory.
type Writer struct {
	dir string
}

func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// WriteMatch stores one match log and returns its path. Filenames carry a
// millisecond timestamp plus the game number, so concurrent-looking stamps
// within one run never collide.
func (w *Writer) WriteMatch(rec Record) (string, error) {
	stamp := fmt.Sprintf("%s_%03d", rec.Timestamp.Format("20060102_150405"), rec.Timestamp.Nanosecond()/1e6)
	path := filepath.Join(w.dir, fmt.Sprintf("log-%s-%d.json", stamp, rec.Game))

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode match record: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write match record: %w", err)
	}
	return path, nil
}

// WriteSummary stores one CSV row per match.
func (w *Writer) WriteSummary(records []Record) error {
	path := filepath.Join(w.dir, "summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "black", "white", "winner", "winner_name", "moves", "fault", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.Game),
			rec.Black,
			rec.White,
			rec.Winner,
			rec.WinnerName,
			strconv.Itoa(len(rec.Moves)),
			rec.Fault,
			rec.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	return writer.Error()
}
