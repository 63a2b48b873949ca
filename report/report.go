// Package report writes human-readable diagnostics of a microbp.Network: the weights between each
// pair of layers, and which units fire almost always or almost never. The output is for reading
// only; it cannot be loaded back into a Network.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/sharnoff/microbp"
)

// DefaultThreshold is the fire rate above which a unit is said to fire almost every time. Units
// with a fire rate below 1 - DefaultThreshold fire almost never.
const DefaultThreshold float64 = 0.55

// Precision is the number of significant digits that weights are written with.
const Precision int = 5

// WeightMatrix returns the weights from the given layer to the next one. Row i holds the
// outgoing weights of unit i, with the bias unit as the last row; column j is unit j of the next
// layer. WeightMatrix panics if the layer is the last one or out of range.
func WeightMatrix(net *microbp.Network, layer int) *mat.Dense {
	if !net.HasBias(layer) {
		panic(fmt.Sprintf("layer %d has no outgoing connections", layer))
	}

	rows, cols := net.Width(layer)+1, net.Width(layer+1)
	m := mat.NewDense(rows, cols, nil)

	for u := 0; u < rows; u++ {
		for n := 0; n < cols; n++ {
			m.Set(u, n, net.Weight(layer, u, n))
		}
	}

	return m
}

// FireTable returns, for each layer, whether each of its non-bias units fires almost every time
// (with a fire rate above threshold) if 'often' is true, or almost never (a rate below
// 1 - threshold) if it is false.
func FireTable(net *microbp.Network, threshold float64, often bool) [][]bool {
	table := make([][]bool, net.NumLayers())
	for l := range table {
		table[l] = make([]bool, net.Width(l))

		for u := range table[l] {
			r := net.FireRate(l, u)
			if often {
				table[l][u] = r > threshold
			} else {
				table[l][u] = r < 1-threshold
			}
		}
	}

	return table
}

// Write writes the full report of the Network to w, using the given threshold for the fire-rate
// tables.
func Write(w io.Writer, net *microbp.Network, threshold float64) error {
	bw := bufio.NewWriter(w)

	top := net.Topology()
	strs := make([]string, len(top))
	for i := range top {
		strs[i] = fmt.Sprint(top[i])
	}
	fmt.Fprintf(bw, "topology: %s\n", strings.Join(strs, " "))
	fmt.Fprintf(bw, "iterations: %d, last error: %.*g, average error: %.*g\n",
		net.Iterations(), Precision, net.LastError(), Precision, net.AverageError())

	for l := 0; l < net.NumLayers()-1; l++ {
		m := WeightMatrix(net, l)
		mean, sd := stat.MeanStdDev(m.RawMatrix().Data, nil)

		fmt.Fprintf(bw, "\nweights from layer %d to layer %d (last row is bias; mean %.*g, sd %.*g):\n",
			l, l+1, Precision, mean, Precision, sd)
		fmt.Fprintf(bw, "    %.*g\n", Precision, mat.Formatted(m, mat.Prefix("    "), mat.Squeeze()))
	}

	writeFireTable(bw, fmt.Sprintf("units that fire almost every time (threshold=%.*g)", Precision, threshold),
		FireTable(net, threshold, true))
	writeFireTable(bw, fmt.Sprintf("units that fire almost never (threshold=%.*g)", Precision, 1-threshold),
		FireTable(net, threshold, false))

	return errors.Wrap(bw.Flush(), "Couldn't write report")
}

// writeFireTable writes the table with one column per layer and one row per unit index, marking
// flagged units with X, others with O, and leaving missing units blank.
func writeFireTable(w io.Writer, title string, table [][]bool) {
	fmt.Fprintf(w, "\n%s:\n", title)

	maxWidth := 0
	fmt.Fprintf(w, "%3s", "")
	for l := range table {
		fmt.Fprintf(w, "%3d", l)
		if len(table[l]) > maxWidth {
			maxWidth = len(table[l])
		}
	}
	fmt.Fprintln(w)

	for u := 0; u < maxWidth; u++ {
		fmt.Fprintf(w, "%3d", u)
		for l := range table {
			mark := ""
			if u < len(table[l]) {
				mark = "O"
				if table[l][u] {
					mark = "X"
				}
			}
			fmt.Fprintf(w, "%3s", mark)
		}
		fmt.Fprintln(w)
	}
}

// Save writes the report of the Network to the file at path, with DefaultThreshold. If
// 'overwrite' is false and the file already exists, Save will return error.
func Save(path string, net *microbp.Network, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return errors.Wrapf(err, "Can't save report to %q", path)
	}

	if err = Write(f, net, DefaultThreshold); err != nil {
		f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "Can't save report to %q", path)
}
