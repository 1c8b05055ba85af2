package readers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/TetFEM/mesh"
)

var ErrMalformedInput = errors.New("readers: malformed input")

// ReadDat reads a .dat problem file
func ReadDat(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := ParseDat(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseDat reads the whitespace separated .dat format:
//
//	k Q dirichlet_value neumann_value
//	num_nodes num_elements num_dirichlet num_neumann
//	Coordinates <id x y z>... EndCoordinates
//	Elements <id n1 n2 n3 n4>... EndElements
//	Dirichlet <id>... EndDirichlet
//	Neumann <id>... EndNeumann
//
// Every Dirichlet node gets dirichlet_value and every Neumann node gets
// neumann_value.
func ParseDat(r io.Reader) (*mesh.Mesh, error) {
	tk := newTokenizer(r)

	var hdr [4]float64
	for i := range hdr {
		v, err := tk.float()
		if err != nil {
			return nil, err
		}
		hdr[i] = v
	}
	var counts [4]int
	for i := range counts {
		v, err := tk.int()
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, tk.errorf("negative count %d", v)
		}
		counts[i] = v
	}
	numNodes, numElements, numDirichlet, numNeumann := counts[0], counts[1], counts[2], counts[3]

	m := mesh.New(mesh.Problem{Conductivity: hdr[0], Source: hdr[1]}, numNodes, numElements)

	if err := tk.keyword("Coordinates"); err != nil {
		return nil, err
	}
	for i := 0; i < numNodes; i++ {
		id, err := tk.int()
		if err != nil {
			return nil, err
		}
		if id < 1 || id > numNodes {
			return nil, tk.errorf("node id %d outside 1..%d", id, numNodes)
		}
		var xyz [3]float64
		for j := range xyz {
			if xyz[j], err = tk.float(); err != nil {
				return nil, err
			}
		}
		if _, err = m.AddNode(id, xyz[0], xyz[1], xyz[2]); err != nil {
			return nil, tk.wrap(err)
		}
	}
	if err := tk.keyword("EndCoordinates"); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if err := tk.keyword("Elements"); err != nil {
		return nil, err
	}
	for i := 0; i < numElements; i++ {
		id, err := tk.int()
		if err != nil {
			return nil, err
		}
		var nodes [4]int
		for j := range nodes {
			if nodes[j], err = tk.int(); err != nil {
				return nil, err
			}
		}
		if _, err = m.AddElement(id, nodes); err != nil {
			return nil, tk.wrap(err)
		}
	}
	if err := tk.keyword("EndElements"); err != nil {
		return nil, err
	}

	if err := readConditions(tk, "Dirichlet", numDirichlet, func(id int) error {
		return m.AddDirichlet(id, hdr[2])
	}); err != nil {
		return nil, err
	}
	if err := readConditions(tk, "Neumann", numNeumann, func(id int) error {
		return m.AddNeumann(id, hdr[3])
	}); err != nil {
		return nil, err
	}
	return m, nil
}

func readConditions(tk *tokenizer, section string, n int, add func(id int) error) error {
	if err := tk.keyword(section); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		id, err := tk.int()
		if err != nil {
			return err
		}
		if err = add(id); err != nil {
			return tk.wrap(err)
		}
	}
	return tk.keyword("End" + section)
}

// tokenizer yields whitespace separated fields and remembers their line
type tokenizer struct {
	sc     *bufio.Scanner
	fields []string
	line   int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	return &tokenizer{sc: sc}
}

func (tk *tokenizer) next() (string, error) {
	for len(tk.fields) == 0 {
		if !tk.sc.Scan() {
			if err := tk.sc.Err(); err != nil {
				return "", err
			}
			return "", tk.errorf("unexpected end of input")
		}
		tk.line++
		tk.fields = strings.Fields(tk.sc.Text())
	}
	tok := tk.fields[0]
	tk.fields = tk.fields[1:]
	return tok, nil
}

func (tk *tokenizer) float() (float64, error) {
	tok, err := tk.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, tk.errorf("expected a number, got %q", tok)
	}
	return v, nil
}

func (tk *tokenizer) int() (int, error) {
	tok, err := tk.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, tk.errorf("expected an integer, got %q", tok)
	}
	return v, nil
}

func (tk *tokenizer) keyword(want string) error {
	tok, err := tk.next()
	if err != nil {
		return err
	}
	if !strings.EqualFold(tok, want) {
		return tk.errorf("expected %q, got %q", want, tok)
	}
	return nil
}

func (tk *tokenizer) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %w: %s", tk.line, ErrMalformedInput, fmt.Sprintf(format, args...))
}

func (tk *tokenizer) wrap(err error) error {
	return fmt.Errorf("line %d: %w", tk.line, err)
}
