// Package checkpoint saves training checkpoints at a fixed step interval
// and rotates old ones out, keeping a bounded window on disk.
package checkpoint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

const ckptExt = ".ckpt"

// ErrNoCheckpoint is returned by Latest when no retained checkpoint exists.
var ErrNoCheckpoint = errors.New("checkpoint: no checkpoint found")

// Saver persists the training state to path. The training loop owns the
// serialization format; the rotator only decides when and where to save.
type Saver interface {
	Save(path string) error
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(path string) error

func (f SaverFunc) Save(path string) error { return f(path) }

// Config controls save cadence and retention. Zero fields take defaults.
type Config struct {
	Interval int    // steps between saves, default 1000
	Name     string // checkpoint base name, default "model"
	Dir      string // target directory, default "."
	Keep     int    // checkpoints retained, default 5
}

// Manifest is the sidecar written next to each checkpoint. It ties the
// file to a training run and records when it was produced.
type Manifest struct {
	RunID   string    `json:"run_id"`
	Step    int       `json:"step"`
	SavedAt time.Time `json:"saved_at"`
}

// Rotator triggers checkpoint saves at every Interval-th step and removes
// the save that fell out of the retention window.
type Rotator struct {
	saver Saver
	cfg   Config
	runID string
	clock func() time.Time
}

// New returns a Rotator with defaults applied and a fresh run ID.
func New(saver Saver, cfg Config) (*Rotator, error) {
	if saver == nil {
		return nil, errors.New("checkpoint: nil saver")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 1000
	}
	if cfg.Name == "" {
		cfg.Name = "model"
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.Keep <= 0 {
		cfg.Keep = 5
	}
	return &Rotator{
		saver: saver,
		cfg:   cfg,
		runID: uuid.NewString(),
		clock: time.Now,
	}, nil
}

// RunID identifies the training run stamped into every manifest.
func (r *Rotator) RunID() string { return r.runID }

// OnStep is called by the training loop after each optimizer step. At
// every non-zero multiple of Interval it saves to <dir>/<name>.<step>.ckpt,
// writes the manifest sidecar, and removes the checkpoint Keep intervals
// back. It returns the saved path, or "" when the step did not trigger.
func (r *Rotator) OnStep(step int) (string, error) {
	if step <= 0 || step%r.cfg.Interval != 0 {
		return "", nil
	}

	if err := os.MkdirAll(r.cfg.Dir, 0o755); err != nil {
		return "", err
	}

	path := r.path(step)
	if err := r.saver.Save(path); err != nil {
		return "", fmt.Errorf("checkpoint: save step %d: %w", step, err)
	}
	if err := r.writeManifest(path, step); err != nil {
		return "", err
	}

	// The save Keep intervals ago just fell out of the window.
	if old := step - r.cfg.Interval*r.cfg.Keep; old > 0 {
		if err := removeIfExists(r.path(old)); err != nil {
			return "", err
		}
		if err := removeIfExists(manifestPath(r.path(old))); err != nil {
			return "", err
		}
	}
	return path, nil
}

func (r *Rotator) path(step int) string {
	return filepath.Join(r.cfg.Dir, fmt.Sprintf("%s.%d%s", r.cfg.Name, step, ckptExt))
}

func (r *Rotator) writeManifest(ckptPath string, step int) error {
	m := Manifest{
		RunID:   r.runID,
		Step:    step,
		SavedAt: r.clock().UTC(),
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("checkpoint: encode manifest: %w", err)
	}
	return os.WriteFile(manifestPath(ckptPath), data, 0o644)
}

func manifestPath(ckptPath string) string {
	return ckptPath + ".json"
}

// ReadManifest loads the sidecar for a checkpoint file.
func ReadManifest(ckptPath string) (Manifest, error) {
	data, err := os.ReadFile(manifestPath(ckptPath))
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("checkpoint: decode manifest: %w", err)
	}
	return m, nil
}

// List returns the steps of retained checkpoints for name in dir,
// ascending. Files that do not match <name>.<step>.ckpt are ignored.
func List(dir, name string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	prefix := name + "."
	var steps []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		fn := e.Name()
		if !strings.HasPrefix(fn, prefix) || !strings.HasSuffix(fn, ckptExt) {
			continue
		}
		mid := strings.TrimSuffix(strings.TrimPrefix(fn, prefix), ckptExt)
		step, err := strconv.Atoi(mid)
		if err != nil || step <= 0 {
			continue
		}
		steps = append(steps, step)
	}
	sort.Ints(steps)
	return steps, nil
}

// Latest resolves the newest retained checkpoint for name in dir, used to
// resume a run. Returns ErrNoCheckpoint when none exists.
func Latest(dir, name string) (string, int, error) {
	steps, err := List(dir, name)
	if err != nil {
		return "", 0, err
	}
	if len(steps) == 0 {
		return "", 0, ErrNoCheckpoint
	}
	step := steps[len(steps)-1]
	return filepath.Join(dir, fmt.Sprintf("%s.%d%s", name, step, ckptExt)), step, nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
