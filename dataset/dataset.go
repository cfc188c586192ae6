package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/optigon/stoneflow/transport"
)

var (
	// ErrNilInstance indicates a nil *Instance was passed to Encode or Save.
	ErrNilInstance = errors.New("dataset: instance must be non-nil")
	// ErrUnknownFormat indicates a file extension outside .json/.yaml/.yml/.msgpack.
	ErrUnknownFormat = errors.New("dataset: unknown instance format")
)

// Format selects an instance codec.
type Format int

const (
	// FormatJSON is the canonical generator format (2-space indent on write).
	FormatJSON Format = iota
	// FormatYAML is for hand-edited instance files.
	FormatYAML
	// FormatMsgpack is a compact binary encoding for large instances.
	FormatMsgpack
)

// Metadata is the optional descriptive block generators attach to an
// instance. Solvers ignore it entirely.
type Metadata struct {
	Dimensions   string  `json:"dimensions,omitempty" yaml:"dimensions,omitempty" msgpack:"dimensions,omitempty"`
	TotalSupply  float64 `json:"total_supply,omitempty" yaml:"total_supply,omitempty" msgpack:"total_supply,omitempty"`
	TotalDemand  float64 `json:"total_demand,omitempty" yaml:"total_demand,omitempty" msgpack:"total_demand,omitempty"`
	Family       string  `json:"family,omitempty" yaml:"family,omitempty" msgpack:"family,omitempty"`
	Seed         int64   `json:"seed,omitempty" yaml:"seed,omitempty" msgpack:"seed,omitempty"`
	DominantCols []int   `json:"dominant_cols,omitempty" yaml:"dominant_cols,omitempty" msgpack:"dominant_cols,omitempty"`
}

// Instance is the raw persisted triple plus optional metadata. It is a
// plain data carrier: nothing here is validated until Problem is called.
type Instance struct {
	Costs  [][]float64 `json:"costs" yaml:"costs" msgpack:"costs"`
	Supply []float64   `json:"supply" yaml:"supply" msgpack:"supply"`
	Demand []float64   `json:"demand" yaml:"demand" msgpack:"demand"`
	Meta   *Metadata   `json:"metadata,omitempty" yaml:"metadata,omitempty" msgpack:"metadata,omitempty"`
}

// Problem validates the instance through transport.NewProblem and returns
// the immutable solver-ready form.
func (in *Instance) Problem() (*transport.Problem, error) {
	return transport.NewProblem(in.Costs, in.Supply, in.Demand)
}

// FormatForPath maps a file extension to its Format.
// Errors: ErrUnknownFormat.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".msgpack", ".mp":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Decode parses one instance from r using the given format.
func Decode(r io.Reader, f Format) (*Instance, error) {
	var in Instance
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&in); err != nil {
			return nil, fmt.Errorf("dataset: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&in); err != nil {
			return nil, fmt.Errorf("dataset: decode yaml: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&in); err != nil {
			return nil, fmt.Errorf("dataset: decode msgpack: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}
	return &in, nil
}

// Encode writes in to w using the given format. JSON and YAML output is
// indented for diff-friendly files; msgpack is raw binary.
func Encode(w io.Writer, f Format, in *Instance) error {
	if in == nil {
		return ErrNilInstance
	}
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(in); err != nil {
			return fmt.Errorf("dataset: encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(in); err != nil {
			return fmt.Errorf("dataset: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(in); err != nil {
			return fmt.Errorf("dataset: encode msgpack: %w", err)
		}
	default:
		return ErrUnknownFormat
	}
	return nil
}

// Load reads the instance stored at path, picking the codec from the
// extension.
func Load(path string) (*Instance, error) {
	f, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer file.Close()
	return Decode(file, f)
}

// LoadProblem is Load followed by validation: the one-liner collaborators
// use to go from a file straight to a solver-ready problem.
func LoadProblem(path string) (*transport.Problem, error) {
	in, err := Load(path)
	if err != nil {
		return nil, err
	}
	return in.Problem()
}

// Save writes in to path, picking the codec from the extension and
// creating or truncating the file.
func Save(path string, in *Instance) error {
	f, err := FormatForPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	defer file.Close()
	return Encode(file, f, in)
}
