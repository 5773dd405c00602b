package source

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/nxadm/tail"
)

// Follow tails a growing CSV file and emits each appended line as a Record
// parsed against the already-loaded header. Identities continue from
// nextOrdinal so appended rows never collide with the initial load. The
// channels close when ctx is done or the tail ends.
func Follow(ctx context.Context, path string, header []string, idColumn string, nextOrdinal int) (<-chan Record, <-chan error) {
	out := make(chan Record, 256)
	errs := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errs)

		t, err := tail.TailFile(path, tail.Config{
			Follow:    true,
			ReOpen:    true,
			MustExist: true,
			Logger:    tail.DiscardingLogger,
			Poll:      true,
			Location:  &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
		})
		if err != nil {
			errs <- err
			return
		}
		defer t.Cleanup()

		ordinal := nextOrdinal
		for {
			select {
			case <-ctx.Done():
				t.Stop()
				return
			case l, ok := <-t.Lines:
				if !ok {
					return
				}
				if l.Err != nil {
					errs <- l.Err
					continue
				}
				if strings.TrimSpace(l.Text) == "" {
					continue
				}
				rec, perr := parseLine(header, idColumn, l.Text, ordinal)
				if perr != nil {
					errs <- perr
					continue
				}
				ordinal++
				select {
				case out <- rec:
				case <-ctx.Done():
					t.Stop()
					return
				}
			}
		}
	}()

	return out, errs
}

func parseLine(header []string, idColumn, line string, ordinal int) (Record, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.FieldsPerRecord = -1
	fields, err := cr.Read()
	if err != nil {
		return Record{}, err
	}
	return buildRecord(header, fields, idColumn, ordinal), nil
}
