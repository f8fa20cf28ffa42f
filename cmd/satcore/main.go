// Command satcore runs the CDCL/DPLL SAT engine against a DIMACS CNF file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/wrenfield/satcore"
)

var (
	flagSolvers = flagStrings("solver", "solver configuration to run; may be repeated to race several")
	flagRace    = flag.Bool("race", false, "run every requested solver concurrently, report the first to finish")
	flagTimeout = flag.Duration("timeout", 0, "abort and report -- after this long (0 disables)")
	flagBatch   = flag.String("batch", "", "run every .cnf/.cnf.gz file in this directory instead of a single instance")
	flagLog     = flag.String("log", "", "write batch results to this file (refuses to overwrite an existing one)")

	flagCPUProfile = flag.Bool("cpuprof", false, "save a pprof CPU profile to cpuprof")
	flagMemProfile = flag.Bool("memprof", false, "save a pprof heap profile to memprof")
)

// stringsFlag collects repeated occurrences of a flag into a slice.
type stringsFlag []string

func (s *stringsFlag) String() string { return strings.Join(*s, ",") }
func (s *stringsFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func flagStrings(name, usage string) *stringsFlag {
	f := &stringsFlag{}
	flag.Var(f, name, usage)
	return f
}

func configurations() ([]satcore.Configuration, error) {
	if len(*flagSolvers) == 0 {
		return []satcore.Configuration{satcore.CDCLVSIDSLuby}, nil
	}
	cfgs := make([]satcore.Configuration, 0, len(*flagSolvers))
	for _, name := range *flagSolvers {
		cfg := satcore.Configuration(name)
		if _, err := satcore.NewSolver(cfg); err != nil {
			return nil, err
		}
		cfgs = append(cfgs, cfg)
	}
	return cfgs, nil
}

// report is the JSON shape emitted for one instance (spec §6 "CLI surface").
type report struct {
	Instance string `json:"Instance"`
	Time     string `json:"Time"`
	Result   string `json:"Result"`
	Solution string `json:"Solution"`
	Solver   string `json:"Solver,omitempty"`
}

// placeholderReport is what a timeout or parse failure contributes to a
// batch log (spec §6 "Batch harness").
func placeholderReport(path string) report {
	return report{Instance: path, Time: "--", Result: "--", Solution: "--"}
}

// formatSolution renders a model the way spec §6 describes: space-separated
// "var true|false" pairs, one per variable in declaration order, 1-based.
func formatSolution(model []bool) string {
	if model == nil {
		return "--"
	}
	parts := make([]string, len(model))
	for i, v := range model {
		parts[i] = fmt.Sprintf("%d %t", i+1, v)
	}
	return strings.Join(parts, " ")
}

func runOne(path string, cfgs []satcore.Configuration, timeout time.Duration) (report, error) {
	inst, err := satcore.Parse(path)
	if err != nil {
		return report{}, err
	}

	start := time.Now()
	var (
		winner string
		result satcore.Result
		model  []bool
	)
	if len(cfgs) > 1 && *flagRace {
		winner, result, model = race(inst, cfgs, timeout)
	} else {
		result, model = runSingle(inst, cfgs[0], timeout)
		winner = string(cfgs[0])
	}
	elapsed := time.Since(start)

	if result == satcore.Unknown {
		rep := placeholderReport(path)
		rep.Solver = winner
		return rep, nil
	}

	return report{
		Instance: path,
		Time:     fmt.Sprintf("%.2f", elapsed.Seconds()),
		Result:   result.String(),
		Solution: formatSolution(model),
		Solver:   winner,
	}, nil
}

// runSingle solves inst with a single configuration, returning Unknown if
// timeout elapses first. satcore.Solve has no cancellation hook, so a timed
// out solve is simply abandoned rather than stopped; the goroutine outlives
// the timeout but the process exits shortly after reporting, per spec §5
// ("cancellation at the solver's nearest safe point" is a driver-side
// concern this CLI discharges by not waiting, not by true preemption).
func runSingle(inst *satcore.Instance, cfg satcore.Configuration, timeout time.Duration) (satcore.Result, []bool) {
	type outcome struct {
		result satcore.Result
		model  []bool
	}
	done := make(chan outcome, 1)
	go func() {
		result, model, err := satcore.Solve(inst, cfg)
		if err != nil {
			log.Fatal(err)
		}
		done <- outcome{result, model}
	}()

	if timeout <= 0 {
		o := <-done
		return o.result, o.model
	}
	select {
	case o := <-done:
		return o.result, o.model
	case <-time.After(timeout):
		return satcore.Unknown, nil
	}
}

func printReport(rep report) {
	enc, err := json.Marshal(rep)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(enc))
}

func run() int {
	if *flagCPUProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfgs, err := configurations()
	if err != nil {
		log.Fatal(err)
	}

	exitCode := 0
	if *flagBatch != "" {
		if err := runBatch(*flagBatch, cfgs, *flagTimeout, *flagLog); err != nil {
			log.Fatal(err)
		}
	} else {
		if flag.NArg() == 0 {
			log.Fatal("missing instance file")
		}
		rep, err := runOne(flag.Arg(0), cfgs, *flagTimeout)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			exitCode = 1
		} else {
			printReport(rep)
			if rep.Result == "--" {
				exitCode = 1
			}
		}
	}

	if *flagMemProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	return exitCode
}

func main() {
	flag.Parse()
	os.Exit(run())
}
