package calc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"gopkg.in/yaml.v3"
)

// CatalogConfig is the file form of catalog adjustments: extra function
// names bound to built-in kernels, and default names to disable. The
// operator table is not configurable; the lexer's unary/binary rule relies
// on its fixed shape.
//
//	functions:
//	  - name: lg
//	    kernel: log2
//	  - name: root
//	    kernel: sqrt
//	disable:
//	  - tan
type CatalogConfig struct {
	Functions []FunctionConfig `yaml:"functions"`
	Disable   []string         `yaml:"disable"`
}

// FunctionConfig binds one function name to a built-in kernel. The new name
// has the kernel's arity.
type FunctionConfig struct {
	Name   string `yaml:"name"`
	Kernel string `yaml:"kernel"`
}

// LoadCatalog reads a YAML CatalogConfig and applies it on top of the
// default catalog. An empty document yields the default catalog unchanged.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var cc CatalogConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("catalog config: %w", err)
	}
	return cc.Catalog()
}

// LoadCatalogFile is LoadCatalog on a file path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadCatalog(f)
}

// Catalog applies the configuration on top of the default catalog.
func (cc *CatalogConfig) Catalog() (*Catalog, error) {
	c := DefaultCatalog().Clone()
	for _, fc := range cc.Functions {
		if !validName(fc.Name) {
			return nil, fmt.Errorf("catalog config: invalid function name %q", fc.Name)
		}
		k := DefaultCatalog().Function(fc.Kernel)
		if k == nil {
			return nil, fmt.Errorf("catalog config: unknown kernel %q for function %q", fc.Kernel, fc.Name)
		}
		c.SetFunc(fc.Name, k.Arity, k.apply)
	}
	for _, name := range cc.Disable {
		c.Remove(name)
	}
	return c, nil
}

// validName reports whether the lexer could ever produce name: a letter
// followed by letters and digits.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
