// Copyright 2023 The splay-tree Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main implements the demo and benchmark driver.  It reads textual
// commands from standard input, one per line, and applies them to an ordered
// set backed by a splay tree:
//
//	insert N   add key N to the set
//	count N    print the number of copies of N (0 or 1)
//	check N    look up N without printing, for timing runs
//
// With -compare, the same command stream is also applied to a B-tree and the
// cumulative time spent inside each structure is logged on exit.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/google/btree"
	"github.com/stiar/splay-tree/set"
)

func main() {
	compare := flag.Bool("compare", false, "also drive a B-tree and log per-structure timings")
	flag.Parse()
	defer glog.Flush()

	holders := []*holder{newSplayHolder()}
	if *compare {
		holders = append(holders, newBTreeHolder())
	}

	if err := run(os.Stdin, os.Stdout, holders); err != nil {
		glog.Fatalf("failed to run: %v", err)
	}

	for _, h := range holders {
		glog.Infof("total time for %s: %v", h.name, h.spent)
	}
}

// holder wraps one set implementation under measurement.
type holder struct {
	name   string
	insert func(key int)
	count  func(key int) int
	spent  time.Duration
}

func newSplayHolder() *holder {
	s := set.New[int]()
	return &holder{
		name:   "splay tree",
		insert: func(key int) { s.Insert(key) },
		count:  s.Count,
	}
}

func newBTreeHolder() *holder {
	tr := btree.NewOrderedG[int](32)
	return &holder{
		name:   "b-tree",
		insert: func(key int) { tr.ReplaceOrInsert(key) },
		count: func(key int) (n int) {
			if tr.Has(key) {
				n = 1
			}
			return
		},
	}
}

func run(in io.Reader, out io.Writer, holders []*holder) error {
	scanner := bufio.NewScanner(in)
	w := bufio.NewWriter(out)
	defer w.Flush()

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		command := fields[0]
		if len(fields) < 2 {
			glog.Warningf("skipping command without an argument: %q", command)
			continue
		}
		key, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("bad key %q: %w", fields[1], err)
		}

		switch command {
		case "insert":
			for _, h := range holders {
				start := time.Now()
				h.insert(key)
				h.spent += time.Since(start)
			}
		case "count":
			for _, h := range holders {
				start := time.Now()
				n := h.count(key)
				h.spent += time.Since(start)
				if h == holders[0] {
					fmt.Fprintln(w, n)
				}
			}
		case "check":
			for _, h := range holders {
				start := time.Now()
				h.count(key)
				h.spent += time.Since(start)
			}
		default:
			glog.Warningf("skipping unknown command %q", command)
		}
	}
	return scanner.Err()
}
