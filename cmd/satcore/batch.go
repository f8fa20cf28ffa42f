package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/wrenfield/satcore"
)

// runBatch iterates every .cnf/.cnf.gz file in dir, solving each with the
// given configurations and a per-file timeout, appending one JSON line per
// instance to logPath (spec §6 "Batch harness"). It refuses to clobber an
// existing log: the file is opened with O_EXCL so a rerun against the same
// log name fails loudly instead of silently overwriting prior results.
func runBatch(dir string, cfgs []satcore.Configuration, timeout time.Duration, logPath string) error {
	if logPath == "" {
		return fmt.Errorf("satcore: --batch requires --log")
	}

	files, err := cnfFiles(dir)
	if err != nil {
		return err
	}

	log, err := os.OpenFile(logPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("satcore: refusing to overwrite existing log: %w", err)
	}
	defer log.Close()

	for _, path := range files {
		rep, err := runOne(path, cfgs, timeout)
		if err != nil {
			rep = placeholderReport(path)
		}
		line, err := json.Marshal(rep)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(log, string(line)); err != nil {
			return err
		}
	}
	return nil
}

// cnfFiles returns every .cnf/.cnf.gz file directly under dir, sorted for a
// reproducible run order.
func cnfFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".cnf") || strings.HasSuffix(name, ".cnf.gz") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}
