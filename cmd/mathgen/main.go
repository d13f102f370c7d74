package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/repr"
	"github.com/google/uuid"

	"github.com/LiYongSheng6/arith"
)

const usage = `usage: mathgen -n <count> -r <range> [-e exercises.txt] [-a answers.txt]
   or: mathgen -e <exercises.txt> -a <answers.txt> [-g grade.txt]
   or: mathgen -practice -n <count> -r <range>`

func main() {
	log.SetFlags(0)
	var (
		count, rng             int
		exname, ansname, gname string
		seed                   string
		sorted, prac, echo, v  bool
	)
	flag.IntVar(&count, "n", 0, "number of exercises to generate")
	flag.IntVar(&rng, "r", 0, "operands are drawn from 1 to r-1 (0 < r < 10)")
	flag.StringVar(&exname, "e", "Exercises.txt", "exercise file")
	flag.StringVar(&ansname, "a", "Answers.txt", "answer file")
	flag.StringVar(&gname, "g", "Grade.txt", "grade report file")
	flag.StringVar(&seed, "seed", "", "random seed (default $MATHGEN_SEED, else random)")
	flag.BoolVar(&sorted, "sort", false, "order exercises from easiest to hardest")
	flag.BoolVar(&prac, "practice", false, "answer exercises interactively")
	flag.BoolVar(&echo, "echo", false, "print the postfix form of each exercise")
	flag.BoolVar(&v, "verbose", false, "log progress to stderr")
	flag.BoolVar(&v, "v", false, "shorthand for -verbose")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	switch {
	case set["n"] || prac:
		if count <= 0 {
			log.Fatalf("number of exercises (%d) must be positive", count)
		}
		if rng <= 0 || rng >= 10 {
			log.Fatalf("range (%d) must be between 1 and 9", rng)
		}
		ex := generate(count, rng, runSeed(seed, v), sorted, v)
		if echo {
			for _, x := range ex {
				e, err := arith.ParseString(x.Text)
				if err != nil {
					log.Fatal(err)
				}
				fmt.Printf("%s : %s\n", x.Text, repr.String(e.Postfix()))
			}
		}
		if prac {
			if err := practice(ex); err != nil {
				log.Fatal(err)
			}
			return
		}
		if err := writeFile(exname, func(f *os.File) error { return arith.WriteExercises(f, ex) }); err != nil {
			log.Fatal(err)
		}
		if err := writeFile(ansname, func(f *os.File) error { return arith.WriteAnswers(f, ex) }); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %d exercises to %s and answers to %s\n", len(ex), exname, ansname)
	case set["e"] && set["a"]:
		r, err := grade(exname, ansname)
		if err != nil {
			log.Fatal(err)
		}
		if v {
			for _, le := range r.Errs {
				log.Print(le)
			}
		}
		if err := writeFile(gname, func(f *os.File) error {
			_, err := f.WriteString(r.String())
			return err
		}); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("graded %d answers (%d wrong, %d unreadable); report written to %s\n",
			len(r.Correct)+len(r.Wrong), len(r.Wrong), len(r.Errs), gname)
	default:
		flag.Usage()
		os.Exit(1)
	}
}

// runSeed picks the seed for this run. An empty seed falls back to
// $MATHGEN_SEED and then to a fresh UUID.
func runSeed(seed string, verbose bool) string {
	if seed == "" {
		seed = os.Getenv("MATHGEN_SEED")
	}
	if seed == "" {
		seed = uuid.New().String()
	}
	if verbose {
		log.Printf("seed %s", seed)
	}
	return seed
}

func generate(count, rng int, seed string, sorted, verbose bool) []arith.Exercise {
	g, err := arith.NewGenerator(arith.Config{Range: rng}, arith.SeededRand(seed))
	if err != nil {
		log.Fatal(err)
	}
	ex, err := g.Generate(count)
	if err != nil {
		log.Fatalf("generated %d of %d exercises: %v", len(ex), count, err)
	}
	if sorted {
		arith.SortByDifficulty(ex)
	}
	if verbose {
		for _, x := range ex {
			e, err := arith.ParseString(x.Text)
			if err != nil {
				log.Fatal(err)
			}
			log.Printf("%s = %v (difficulty %.3g)", x.Text, x.Answer, e.Difficulty())
		}
	}
	return ex
}

func grade(exname, ansname string) (arith.GradeReport, error) {
	exf, err := os.Open(exname)
	if err != nil {
		return arith.GradeReport{}, err
	}
	defer exf.Close()
	ansf, err := os.Open(ansname)
	if err != nil {
		return arith.GradeReport{}, err
	}
	defer ansf.Close()
	return arith.GradeReaders(exf, ansf)
}

// writeFile creates name and fills it with write.
func writeFile(name string, write func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}
