package storage

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/san-kum/mandelscope/internal/view"
)

// Store writes snapshot artifacts into a flat directory: one PNG per
// snapshot plus a JSON sidecar describing the region it shows. These
// are explicit exports; nothing in the session reads them back except
// the listing table.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Snapshot struct {
	ID        string    `json:"id"`
	CenterRe  float64   `json:"center_re"`
	CenterIm  float64   `json:"center_im"`
	SpanRe    float64   `json:"span_re"`
	SpanIm    float64   `json:"span_im"`
	Scheme    string    `json:"scheme"`
	MaxIters  uint32    `json:"max_iters"`
	Scanned   int       `json:"scanned_pixels"`
	Cols      int       `json:"width_px"`
	Rows      int       `json:"height_px"`
	ElapsedMS int64     `json:"elapsed_ms"`
	Timestamp time.Time `json:"timestamp"`
}

func (sn Snapshot) Viewport() view.Viewport {
	return view.Viewport{
		CenterRe: sn.CenterRe,
		CenterIm: sn.CenterIm,
		Width:    sn.SpanRe,
		Height:   sn.SpanIm,
	}
}

// Save writes the image and its sidecar under a fresh id derived from
// name and the current unix time, and returns the id.
func (s *Store) Save(name string, img image.Image, snap Snapshot) (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}

	id := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	snap.ID = id
	snap.Timestamp = time.Now()

	pngFile, err := os.Create(filepath.Join(s.baseDir, id+".png"))
	if err != nil {
		return "", err
	}
	defer pngFile.Close()
	if err := png.Encode(pngFile, img); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(s.baseDir, id+".json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return "", err
	}

	return id, nil
}

// List returns the sidecars found in the snapshot directory. Entries
// that fail to parse are skipped rather than failing the listing.
func (s *Store) List() ([]Snapshot, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Snapshot{}, nil
		}
		return nil, err
	}

	snaps := make([]Snapshot, 0)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}

		var snap Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			continue
		}
		snaps = append(snaps, snap)
	}

	return snaps, nil
}

func (s *Store) ImagePath(id string) string {
	return filepath.Join(s.baseDir, id+".png")
}
