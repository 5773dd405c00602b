// rowgen emits deterministic sample CSV data for exercising tabular:
// numeric, temporal, and string columns, blanks, and values that need CSV
// quoting.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

var (
	firstNames = []string{"Ada", "Grace", "Alan", "Edsger", "Barbara", "Donald", "Leslie", "Ken", "Dennis", "Radia"}
	lastNames  = []string{"Lovelace", "Hopper", "Turing", "Dijkstra", "Liskov", "Knuth", "Lamport", "Thompson", "Ritchie", "Perlman"}
	cities     = []string{"Lisbon", "Oslo", "Kyoto", "Austin", "Montevideo", "Nairobi", "Wellington", "Tallinn"}
	statuses   = []string{"open", "pending", "closed", "archived"}
)

func main() {
	rows := flag.Int("rows", 1000, "number of rows to generate")
	out := flag.String("out", "", "output path (default stdout)")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintln(os.Stderr, "rowgen:", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	rng := rand.New(rand.NewSource(*seed))
	cw := csv.NewWriter(w)
	defer cw.Flush()

	cw.Write([]string{"id", "name", "city", "amount", "qty", "created_at", "status", "note"})
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < *rows; i++ {
		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
		amount := strconv.FormatFloat(float64(rng.Intn(100000))/100, 'f', 2, 64)
		qty := strconv.Itoa(rng.Intn(500))
		created := base.Add(time.Duration(rng.Intn(365*24)) * time.Hour).Format(time.RFC3339)
		note := ""
		switch rng.Intn(10) {
		case 0:
			note = "follow up, then close"
		case 1:
			note = `tagged "priority"`
		case 2:
			// exercise blank cells; these sort last
			amount = ""
		}
		cw.Write([]string{
			fmt.Sprintf("r%05d", i),
			name,
			cities[rng.Intn(len(cities))],
			amount,
			qty,
			created,
			statuses[rng.Intn(len(statuses))],
			note,
		})
	}
}
