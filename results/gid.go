package results

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var ErrMalformedResults = errors.New("results: malformed GiD results file")

const (
	gidHeader     = "GiD Post Results File 1.0"
	gidResult     = `Result "Temperature" "Load Case 1" 1 Scalar OnNodes`
	gidComponents = `ComponentNames "T"`
	gidValues     = "Values"
	gidEndValues  = "End values"
)

// PostResPath returns the results file name for an input base name
func PostResPath(basename string) string { return basename + ".post.res" }

// WriteGiD writes one scalar per node, node ID i+1 taking values[i]
func WriteGiD(w io.Writer, values mat.Vector) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, gidHeader)
	fmt.Fprintln(bw, gidResult)
	fmt.Fprintln(bw, gidComponents)
	fmt.Fprintln(bw, gidValues)
	for i := 0; i < values.Len(); i++ {
		fmt.Fprintf(bw, "%d     %s\n", i+1, strconv.FormatFloat(values.AtVec(i), 'g', -1, 64))
	}
	fmt.Fprintln(bw, gidEndValues)
	return bw.Flush()
}

// WriteGiDFile writes <basename>.post.res
func WriteGiDFile(basename string, values mat.Vector) error {
	f, err := os.Create(PostResPath(basename))
	if err != nil {
		return err
	}
	if err = WriteGiD(f, values); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadGiD parses a file written by WriteGiD into node ID -> value
func ReadGiD(r io.Reader) (map[int]float64, error) {
	sc := bufio.NewScanner(r)
	var line int
	nextLine := func() (string, bool) {
		for sc.Scan() {
			line++
			if s := strings.TrimSpace(sc.Text()); s != "" {
				return s, true
			}
		}
		return "", false
	}
	bad := func(format string, args ...interface{}) error {
		return fmt.Errorf("line %d: %w: %s", line, ErrMalformedResults, fmt.Sprintf(format, args...))
	}

	for _, want := range []string{gidHeader, gidResult, gidComponents, gidValues} {
		s, ok := nextLine()
		if !ok {
			return nil, bad("missing %q", want)
		}
		if s != want {
			return nil, bad("expected %q, got %q", want, s)
		}
	}

	values := make(map[int]float64)
	for {
		s, ok := nextLine()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, bad("missing %q", gidEndValues)
		}
		if strings.EqualFold(s, gidEndValues) {
			return values, nil
		}
		fields := strings.Fields(s)
		if len(fields) != 2 {
			return nil, bad("expected <node_id> <value>, got %q", s)
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, bad("node id %q", fields[0])
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, bad("value %q", fields[1])
		}
		if _, dup := values[id]; dup {
			return nil, bad("node %d listed twice", id)
		}
		values[id] = v
	}
}

// ReadGiDFile reads a .post.res file
func ReadGiDFile(path string) (map[int]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	values, err := ReadGiD(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}
