// Command kvidx is example glue exercising the bt and bs index engines
// from the command line: build a bs index from a CSV-ish "key,value"
// stream, or drive a bt index interactively with insert/get commands.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/globalforge/BTree/internal/logger"
	"github.com/globalforge/BTree/pkg/bs"
	"github.com/globalforge/BTree/pkg/bt"
)

func main() {
	engine := flag.String("engine", "bt", "index engine to drive: bt or bs")
	path := flag.String("path", "", "index file path")
	keySize := flag.Int("keysize", 32, "fixed key size in bytes")
	valueSize := flag.Int("valsize", 8, "fixed value size in bytes")
	nodeSize := flag.Int("nodesize", 4096, "bt node size target in bytes (ignored for bs)")
	flag.Parse()

	if *path == "" {
		fatalf("missing -path")
	}

	switch *engine {
	case "bt":
		runBT(*path, *keySize, *valueSize, *nodeSize)
	case "bs":
		runBS(*path, *keySize, *valueSize)
	default:
		fatalf("unknown engine %q (want bt or bs)", *engine)
	}
}

// runBT opens or creates a bt index and processes "insert key value" /
// "get key" lines from stdin until EOF.
func runBT(path string, keySize, valueSize, nodeSize int) {
	opts := bt.Options{KeySize: keySize, ValueSize: valueSize, NodeSize: nodeSize}

	mode := bt.ModeWrite
	if _, err := os.Stat(path); err == nil {
		mode = bt.ModeRead
	}

	e, err := bt.Open(path, mode, opts)
	if err != nil {
		fatalf("open: %v", err)
	}
	defer func() {
		if err := e.Close(); err != nil {
			logger.L.WithError(err).Error("bt: close failed")
		}
	}()

	fmt.Printf("opened %s mode=%v layout=%+v\n", path, mode, e.Layout())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "insert":
			if len(fields) < 3 || mode != bt.ModeWrite {
				fmt.Println("usage: insert <key> <value> (write mode only)")
				continue
			}
			if err := e.Insert(fields[1], []byte(fields[2])); err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println("ok")
		case "get":
			if len(fields) < 2 {
				fmt.Println("usage: get <key>")
				continue
			}
			v, found, err := e.Retrieve(fields[1])
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			if !found {
				fmt.Println("not found")
				continue
			}
			fmt.Printf("%q\n", strings.TrimRight(string(v), "\x00"))
		case "size":
			fmt.Println(e.Size())
		default:
			fmt.Println("commands: insert <key> <value> | get <key> | size")
		}
	}
}

// runBS reads "key,value" lines from stdin, builds a bs index at path,
// then answers "get key" lines against the freshly built index.
func runBS(path string, keySize, valueSize int) {
	opts := bs.Options{KeySize: keySize, ValueSize: valueSize}
	builder := bs.NewBuilder(opts)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			continue
		}
		builder.AddRecord(parts[0], []byte(parts[1]))
	}

	reader, err := builder.BuildIndex(path)
	if err != nil {
		fatalf("buildIndex: %v", err)
	}
	defer reader.CloseIndex()

	fmt.Printf("built %s with %d records\n", path, reader.RecordCount())

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || fields[0] != "get" {
			continue
		}
		v, found, err := reader.Lookup(fields[1])
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		if !found {
			fmt.Println("not found")
			continue
		}
		fmt.Printf("%q\n", strings.TrimRight(string(v), "\x00"))
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
