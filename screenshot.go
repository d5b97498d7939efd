package touchui

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNoSnapshot is returned by Screenshot when the surface cannot be read back.
var ErrNoSnapshot = errors.New("touchui: surface does not support snapshots")

// Screenshot writes the current surface contents as a PNG into ScreenshotDir
// with a timestamped filename and returns its path. The surface must
// implement Snapshotter.
func (m *Manager) Screenshot(label string) (string, error) {
	snap, ok := m.surface.(Snapshotter)
	if !ok {
		return "", m.report(ErrNoSnapshot)
	}
	if err := os.MkdirAll(m.ScreenshotDir, 0o755); err != nil {
		return "", m.report(fmt.Errorf("screenshot: mkdir %s: %w", m.ScreenshotDir, err))
	}

	src := snap.Snapshot()
	img := image.NewNRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)

	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	if err := writePNG(path, img); err != nil {
		return "", m.report(fmt.Errorf("screenshot: %w", err))
	}
	return path, nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
