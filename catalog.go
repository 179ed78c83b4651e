/*package golut builds named collections of cached lookup tables from table
config files. The tables themselves live in math/interpolate.
*/
package golut

import (
	"fmt"
	"sort"

	"github.com/phil-mansfield/golut/io"
	"github.com/phil-mansfield/golut/math/interpolate"
)

// Catalog is a named collection of 1D and 2D lookup tables. The names of 1D
// and 2D tables are independent of one another.
//
// Like the tables it holds, a Catalog is not safe for concurrent use. Each
// goroutine should use its own Ref.
type Catalog struct {
	linear   map[string]*interpolate.Linear
	biLinear map[string]*interpolate.BiLinear
}

// ReadCatalog reads the table config file fname and constructs every table
// it describes.
func ReadCatalog(fname string) (*Catalog, error) {
	con, err := io.ReadConfig(fname)
	if err != nil {
		return nil, err
	}
	return NewCatalog(con)
}

// NewCatalog constructs every table described by con, which must already have
// been checked with CheckInit. If any table cannot be constructed, an error
// naming it is returned.
func NewCatalog(con *io.TableConfig) (*Catalog, error) {
	c := &Catalog{
		linear:   map[string]*interpolate.Linear{},
		biLinear: map[string]*interpolate.BiLinear{},
	}

	for name, tcon := range con.Table1D {
		xs, ys, err := tcon.Samples()
		if err != nil {
			return nil, fmt.Errorf("Could not load Table1D '%s': %s", name, err)
		}

		var lin *interpolate.Linear
		if tcon.View {
			lin, err = interpolate.NewLinearView(xs, ys)
		} else {
			lin, err = interpolate.NewLinear(xs, ys)
		}
		if err != nil {
			return nil, fmt.Errorf("Invalid Table1D '%s': %w", name, err)
		}
		c.linear[name] = lin
	}

	for name, tcon := range con.Table2D {
		xs, ys, vals, err := tcon.Samples()
		if err != nil {
			return nil, fmt.Errorf("Could not load Table2D '%s': %s", name, err)
		}

		var bi *interpolate.BiLinear
		if tcon.View {
			bi, err = interpolate.NewBiLinearView(xs, ys, vals)
		} else {
			bi, err = interpolate.NewBiLinear(xs, ys, vals)
		}
		if err != nil {
			return nil, fmt.Errorf("Invalid Table2D '%s': %w", name, err)
		}
		c.biLinear[name] = bi
	}

	return c, nil
}

// Linear returns the 1D table with the given name.
func (c *Catalog) Linear(name string) (*interpolate.Linear, error) {
	lin, ok := c.linear[name]
	if !ok {
		return nil, fmt.Errorf("No Table1D named '%s'.", name)
	}
	return lin, nil
}

// BiLinear returns the 2D table with the given name.
func (c *Catalog) BiLinear(name string) (*interpolate.BiLinear, error) {
	bi, ok := c.biLinear[name]
	if !ok {
		return nil, fmt.Errorf("No Table2D named '%s'.", name)
	}
	return bi, nil
}

// Dim returns the dimension of the table with the given name, or 0 if there
// is no such table. If both a 1D and a 2D table share the name, 1 is
// returned.
func (c *Catalog) Dim(name string) int {
	if _, ok := c.linear[name]; ok {
		return 1
	} else if _, ok := c.biLinear[name]; ok {
		return 2
	}
	return 0
}

// Names returns the sorted names of the 1D and 2D tables.
func (c *Catalog) Names() (oneD, twoD []string) {
	for name := range c.linear {
		oneD = append(oneD, name)
	}
	for name := range c.biLinear {
		twoD = append(twoD, name)
	}
	sort.Strings(oneD)
	sort.Strings(twoD)
	return oneD, twoD
}

// Ref returns a Catalog sharing c's samples in which every table has a fresh
// cache of its own.
func (c *Catalog) Ref() *Catalog {
	ref := &Catalog{
		linear:   make(map[string]*interpolate.Linear, len(c.linear)),
		biLinear: make(map[string]*interpolate.BiLinear, len(c.biLinear)),
	}
	for name, lin := range c.linear {
		ref.linear[name] = lin.Ref().(*interpolate.Linear)
	}
	for name, bi := range c.biLinear {
		ref.biLinear[name] = bi.Ref().(*interpolate.BiLinear)
	}
	return ref
}
