// cubemap maps points between the unit hypercube [0,1]ⁿ and
// distribution parameter space.
//
// Usage:
//
//	cubemap [flags] component...
//
// Each component argument names a distribution with its parameters:
//
//	normal(mu,sigma) uniform(min,max) exponential(rate) beta(a,b)
//	lognormal(mu,sigma) studentst(mu,sigma,nu) gamma(a,b)
//	dirichlet(a1,a2,...)
//
// Alternatively -f loads the components from a TOML file of
// [[component]] tables with kind and params keys.
//
// By default cubemap reads one whitespace-separated hypercube vector
// per line from stdin and writes the forward-transformed values, one
// line per input line. With -inverse it maps parameter-space vectors
// back to the hypercube instead. With -sample N it reads nothing and
// instead draws N uniform hypercube points, maps them forward, and
// describes each output column.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/probkit/go-hypercube/cube"
	"github.com/probkit/go-hypercube/dist"
)

var (
	flagInverse = flag.Bool("inverse", false, "map parameter-space vectors back to the hypercube")
	flagSample  = flag.Int("sample", 0, "draw `N` uniform points, map them, and describe the output")
	flagSeed    = flag.Int64("seed", 1, "random seed for -sample")
	flagFile    = flag.String("f", "", "read components from TOML `file`")
)

func main() {
	flag.Parse()

	components, err := loadComponents()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	tr, err := cube.NewProduct(components...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *flagSample > 0 {
		describe(tr, *flagSample, *flagSeed)
		return
	}
	mapLines(tr, os.Stdin, os.Stdout)
}

func loadComponents() ([]any, error) {
	var components []any
	if *flagFile != "" {
		var spec struct {
			Component []struct {
				Kind   string    `toml:"kind"`
				Params []float64 `toml:"params"`
			} `toml:"component"`
		}
		if _, err := toml.DecodeFile(*flagFile, &spec); err != nil {
			return nil, err
		}
		for _, c := range spec.Component {
			d, err := makeDist(c.Kind, c.Params)
			if err != nil {
				return nil, err
			}
			components = append(components, d)
		}
	}
	for _, arg := range flag.Args() {
		d, err := parseComponent(arg)
		if err != nil {
			return nil, err
		}
		components = append(components, d)
	}
	if len(components) == 0 {
		return nil, fmt.Errorf("no components; pass component arguments or -f")
	}
	return components, nil
}

// parseComponent parses "name(p1,p2,...)".
func parseComponent(s string) (any, error) {
	name, rest, ok := strings.Cut(s, "(")
	if !ok || !strings.HasSuffix(rest, ")") {
		return nil, fmt.Errorf("component %q: want name(params...)", s)
	}
	var params []float64
	for _, f := range strings.Split(strings.TrimSuffix(rest, ")"), ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("component %q: %v", s, err)
		}
		params = append(params, v)
	}
	return makeDist(name, params)
}

func makeDist(kind string, params []float64) (any, error) {
	need := func(n int) error {
		if len(params) != n {
			return fmt.Errorf("%s takes %d parameters, have %d", kind, n, len(params))
		}
		return nil
	}
	switch strings.ToLower(kind) {
	case "normal":
		if err := need(2); err != nil {
			return nil, err
		}
		return distuv.Normal{Mu: params[0], Sigma: params[1]}, nil
	case "uniform":
		if err := need(2); err != nil {
			return nil, err
		}
		return distuv.Uniform{Min: params[0], Max: params[1]}, nil
	case "exponential":
		if err := need(1); err != nil {
			return nil, err
		}
		return distuv.Exponential{Rate: params[0]}, nil
	case "beta":
		if err := need(2); err != nil {
			return nil, err
		}
		return distuv.Beta{Alpha: params[0], Beta: params[1]}, nil
	case "lognormal":
		if err := need(2); err != nil {
			return nil, err
		}
		return distuv.LogNormal{Mu: params[0], Sigma: params[1]}, nil
	case "studentst":
		if err := need(3); err != nil {
			return nil, err
		}
		return distuv.StudentsT{Mu: params[0], Sigma: params[1], Nu: params[2]}, nil
	case "gamma":
		if err := need(2); err != nil {
			return nil, err
		}
		return distuv.Gamma{Alpha: params[0], Beta: params[1]}, nil
	case "dirichlet":
		return dist.NewDirichlet(params...)
	}
	return nil, fmt.Errorf("unknown distribution %q", kind)
}

func mapLines(tr cube.Transform, r io.Reader, w io.Writer) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		in := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			in[i] = v
		}
		var out []float64
		var err error
		if *flagInverse {
			out, err = tr.Inverse(in)
		} else {
			out, err = tr.Forward(in)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for i, v := range out {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%.6g", v)
		}
		fmt.Fprintln(w)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// describe forward-maps n uniform hypercube points and summarizes
// each output column.
func describe(tr cube.Transform, n int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	cols := make([][]float64, tr.ValueDim())
	coords := make([]float64, tr.Dim())
	for s := 0; s < n; s++ {
		for i := range coords {
			coords[i] = rng.Float64()
		}
		out, err := tr.Forward(coords)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for i, v := range out {
			cols[i] = append(cols[i], v)
		}
	}

	for i, col := range cols {
		mean, _ := stats.Mean(col)
		sd, _ := stats.StandardDeviation(col)
		fmt.Printf("column %d  N %d  mean %.6g  std dev %.6g\n", i, n, mean, sd)
		labels := map[float64]string{0: "min", 50: "median", 100: "max"}
		for _, p := range []float64{0, 5, 25, 50, 75, 95, 100} {
			label, ok := labels[p]
			if !ok {
				label = fmt.Sprintf("%g%%ile", p)
			}
			var q float64
			switch p {
			case 0:
				q, _ = stats.Min(col)
			case 100:
				q, _ = stats.Max(col)
			default:
				q, _ = stats.Percentile(col, p)
			}
			fmt.Printf("%8s %.6g\n", label, q)
		}
		fmt.Println()
	}
}
