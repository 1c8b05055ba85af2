// Command tetfem solves a steady diffusion problem on a tetrahedral mesh.
//
//	tetfem [flags] <name>
//
// reads <name>.dat (or the mesh named by -config) and writes <name>.post.res.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/notargets/TetFEM/config"
	"github.com/notargets/TetFEM/element"
	"github.com/notargets/TetFEM/fem"
	"github.com/notargets/TetFEM/mesh"
	"github.com/notargets/TetFEM/mesh/readers"
	"github.com/notargets/TetFEM/partitions"
	"github.com/notargets/TetFEM/results"
	"github.com/notargets/TetFEM/utils"
)

var errUsage = errors.New("usage")

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, errUsage) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("tetfem: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tetfem", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configFile   = fs.String("config", "", "YAML problem file naming a gmsh/gambit/su2 mesh, used instead of <name>.dat")
		modelName    = fs.String("model", "heat", "element model: "+strings.Join(element.ModelNames(), " | "))
		workers      = fs.Int("workers", 1, "number of element partitions built concurrently")
		partitioning = fs.String("partitioning", "block", "element partitioning: block | round-robin")
		plotAxis     = fs.String("plot", "", "also write <name>.png, nodal values against x, y or z")
		verbose      = fs.Bool("v", false, "report progress")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: tetfem [flags] <name>\n\n")
		fmt.Fprintf(stderr, "Reads <name>.dat and writes <name>.post.res.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errUsage
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	name := fs.Arg(0)

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	rep := utils.NewReporter(*verbose)
	rep.W = stdout

	var (
		m   *mesh.Mesh
		err error
	)
	if *configFile != "" {
		cfg, err := config.Load(*configFile)
		if err != nil {
			return err
		}
		// command line flags win over the problem file
		if !set["model"] {
			*modelName = cfg.Model
		}
		if !set["workers"] {
			*workers = cfg.Workers
		}
		if !set["partitioning"] {
			*partitioning = cfg.Partitioning
		}
		rep.Printf("Reading mesh %s...\n", cfg.Mesh)
		if m, err = cfg.ReadMesh(); err != nil {
			return err
		}
	} else {
		rep.Printf("Reading %s.dat...\n", name)
		if m, err = readers.ReadDat(name + ".dat"); err != nil {
			return err
		}
	}
	rep.Printf("%s", m)

	opts := fem.DefaultOptions()
	opts.Reporter = rep
	opts.Workers = *workers
	if opts.Model, err = element.ModelByName(*modelName); err != nil {
		return err
	}
	if opts.Strategy, err = partitions.ParseStrategy(*partitioning); err != nil {
		return err
	}
	var axis results.Axis
	if *plotAxis != "" {
		if axis, err = results.ParseAxis(*plotAxis); err != nil {
			return err
		}
	}

	res, err := fem.Run(m, opts)
	if err != nil {
		return err
	}

	rep.Printf("Writing %s...\n", results.PostResPath(name))
	if err = results.WriteGiDFile(name, res.Values); err != nil {
		return err
	}
	if *plotAxis != "" {
		rep.Printf("Writing %s.png...\n", name)
		if err = results.PlotProfile(m, res.Values, axis, name+".png"); err != nil {
			return err
		}
	}
	return nil
}
