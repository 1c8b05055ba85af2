package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/notargets/TetFEM/element"
	"github.com/notargets/TetFEM/mesh"
	"github.com/notargets/TetFEM/mesh/readers"
	"github.com/notargets/TetFEM/partitions"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// NodeSet is a list of node IDs sharing one prescribed value
type NodeSet struct {
	Value float64 `yaml:"value"`
	Nodes []int   `yaml:"nodes"`
}

// Config describes a mesh file driven run
type Config struct {
	Mesh         string  `yaml:"mesh"`
	Model        string  `yaml:"model"`
	Conductivity float64 `yaml:"conductivity"`
	Source       float64 `yaml:"source"`
	Workers      int     `yaml:"workers"`
	Partitioning string  `yaml:"partitioning"`
	Dirichlet    NodeSet `yaml:"dirichlet"`
	Neumann      NodeSet `yaml:"neumann"`
}

// SetDefault sets the values used for keys missing from the file
func (c *Config) SetDefault() {
	c.Model = element.HeatTransfer{}.Name()
	c.Conductivity = 1
	c.Workers = 1
	c.Partitioning = partitions.BlockPartition.String()
}

// Load reads and validates a YAML problem file. A relative mesh path is
// taken relative to the directory of the problem file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !filepath.IsAbs(c.Mesh) {
		c.Mesh = filepath.Join(filepath.Dir(path), c.Mesh)
	}
	return c, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	var c Config
	c.SetDefault()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.Mesh == "" {
		return fmt.Errorf("%w: mesh file is required", ErrInvalidConfig)
	}
	if _, err := element.ModelByName(c.Model); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := partitions.ParseStrategy(c.Partitioning); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

func (c *Config) Problem() mesh.Problem {
	return mesh.Problem{Conductivity: c.Conductivity, Source: c.Source}
}

func (c *Config) ElementModel() (element.Model, error) {
	return element.ModelByName(c.Model)
}

func (c *Config) Strategy() (partitions.PartitionStrategy, error) {
	return partitions.ParseStrategy(c.Partitioning)
}

// ReadMesh imports the configured mesh with its conditions
func (c *Config) ReadMesh() (*mesh.Mesh, error) {
	return readers.ReadMeshFile(c.Mesh, c.Problem(),
		readers.NodeSet{Value: c.Dirichlet.Value, Nodes: c.Dirichlet.Nodes},
		readers.NodeSet{Value: c.Neumann.Value, Nodes: c.Neumann.Nodes})
}
