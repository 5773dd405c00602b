package source

import (
	"strconv"
	"strings"
	"time"
)

const sniffSample = 200

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// SniffKinds inspects a sample of each column and classifies it. A column
// counts as numeric or temporal when at least half of its non-blank sample
// values parse as such; anything else stays a string.
func SniffKinds(header []string, records []Record) map[string]Kind {
	kinds := make(map[string]Kind, len(header))
	for _, name := range header {
		kinds[name] = sniffColumn(name, records)
	}
	return kinds
}

func sniffColumn(name string, records []Record) Kind {
	seen := 0
	numbers := 0
	timeHits := map[string]int{}
	for i := 0; i < len(records) && seen < sniffSample; i++ {
		raw := strings.TrimSpace(records[i].Fields[name])
		if raw == "" {
			continue
		}
		seen++
		if _, err := strconv.ParseFloat(raw, 64); err == nil {
			numbers++
			continue
		}
		for _, layout := range timeLayouts {
			if _, err := time.Parse(layout, raw); err == nil {
				timeHits[layout]++
				break
			}
		}
	}
	if seen == 0 {
		return Kind{Type: KindString}
	}
	if numbers >= (seen+1)/2 {
		return Kind{Type: KindNumber}
	}
	for _, layout := range timeLayouts {
		if timeHits[layout] >= (seen+1)/2 {
			return Kind{Type: KindTime, TimeLayout: layout}
		}
	}
	return Kind{Type: KindString}
}
