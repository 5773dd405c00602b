package source

import (
	"strings"
	"testing"
	"time"

	"tabular/internal/grid"
	"tabular/internal/util/logx"
)

const sampleCSV = `id,name,amount,created_at
r1,alice,10.5,2024-01-01T00:00:00Z
r2,bob,,2024-02-01T00:00:00Z
r3,"smith, carol",3,2024-03-01T00:00:00Z
`

func TestLoadCSVBasic(t *testing.T) {
	d, err := LoadCSV(strings.NewReader(sampleCSV), "sample", "id")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(d.Header) != 4 || d.Header[0] != "id" {
		t.Fatalf("header: %v", d.Header)
	}
	if len(d.Records) != 3 {
		t.Fatalf("records: %d", len(d.Records))
	}
	if d.Records[0].ID != "r1" || d.Records[2].ID != "r3" {
		t.Fatalf("id column identities: %v, %v", d.Records[0].ID, d.Records[2].ID)
	}
	if d.Records[2].Fields["name"] != "smith, carol" {
		t.Fatalf("quoted field: %q", d.Records[2].Fields["name"])
	}
}

func TestLoadCSVOrdinalIdentityWithoutIDColumn(t *testing.T) {
	d, err := LoadCSV(strings.NewReader(sampleCSV), "sample", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d.Records[0].ID != "0" || d.Records[2].ID != "2" {
		t.Fatalf("ordinal identities: %v, %v", d.Records[0].ID, d.Records[2].ID)
	}
}

func TestLoadCSVShortRowsPadded(t *testing.T) {
	d, err := LoadCSV(strings.NewReader("a,b,c\n1,2\n"), "sample", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d.Records[0].Fields["c"] != "" {
		t.Fatalf("short rows must pad with blanks, got %q", d.Records[0].Fields["c"])
	}
}

func TestLoadCSVDuplicateHeaderWarnsAndKeepsRightmost(t *testing.T) {
	d, err := LoadCSV(strings.NewReader("a,a,b\n1,2,3\n"), "dup.csv", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d.Records[0].Fields["a"] != "2" {
		t.Fatalf("rightmost duplicate column must win, got %q", d.Records[0].Fields["a"])
	}
	warned := false
	for _, line := range logx.Lines() {
		if strings.Contains(line, `dup.csv: header "a" appears 2 times`) {
			warned = true
		}
	}
	if !warned {
		t.Fatalf("duplicate headers must be reported in the application log")
	}
}

func TestLoadCSVEmptyInput(t *testing.T) {
	if _, err := LoadCSV(strings.NewReader(""), "sample", ""); err == nil {
		t.Fatalf("missing header must be an error")
	}
}

func TestSniffKinds(t *testing.T) {
	d, err := LoadCSV(strings.NewReader(sampleCSV), "sample", "id")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d.Kinds["amount"].Type != KindNumber {
		t.Fatalf("amount should sniff numeric, got %v", d.Kinds["amount"].Type)
	}
	if d.Kinds["created_at"].Type != KindTime {
		t.Fatalf("created_at should sniff temporal, got %v", d.Kinds["created_at"].Type)
	}
	if d.Kinds["name"].Type != KindString {
		t.Fatalf("name should stay string, got %v", d.Kinds["name"].Type)
	}
}

func TestKindConvert(t *testing.T) {
	num := Kind{Type: KindNumber}
	if v := num.Convert("10.5"); v != 10.5 {
		t.Fatalf("numeric convert: %v", v)
	}
	if v := num.Convert(""); v != nil {
		t.Fatalf("blank cells are nil, got %v", v)
	}
	if v := num.Convert("oops"); v != "oops" {
		t.Fatalf("unparseable values fall back to the raw string, got %v", v)
	}
	tm := Kind{Type: KindTime, TimeLayout: time.RFC3339}
	if v, ok := tm.Convert("2024-01-01T00:00:00Z").(time.Time); !ok || v.Year() != 2024 {
		t.Fatalf("time convert: %v", v)
	}
}

func TestDatasetColumnsSortNumerically(t *testing.T) {
	d, err := LoadCSV(strings.NewReader("id,amount\na,9\nb,10\nc,2\n"), "sample", "id")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cols := d.Columns()
	got := grid.Sort(d.Records, cols, grid.SortSpec{{ColumnID: "amount", Dir: grid.Ascending}})
	if got[0].ID != "c" || got[1].ID != "a" || got[2].ID != "b" {
		t.Fatalf("numeric sort through sniffed kinds: %v %v %v", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestDatasetBlankSortsLast(t *testing.T) {
	d, err := LoadCSV(strings.NewReader("id,amount\na,\nb,5\n"), "sample", "id")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := grid.Sort(d.Records, d.Columns(), grid.SortSpec{{ColumnID: "amount", Dir: grid.Ascending}})
	if got[len(got)-1].ID != "a" {
		t.Fatalf("blank cell must sort last")
	}
}
