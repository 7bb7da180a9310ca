package validate

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Gunvolt24/swiftcart/internal/domain"
)

func TestValidateJSONLStream_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewSnapshotValidator()

	line1 := oneLineJSON(validSnapshotJSON("1", 2))
	line2 := oneLineJSON(validSnapshotJSON("2", 0)) // quantity 0
	line3 := ""                                     // пустая строка — ок
	line4 := oneLineJSON(validSnapshotJSON("3", 1))

	input := strings.Join([]string{line1, line2, line3, line4}, "\n")
	var out bytes.Buffer

	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 1 {
		t.Fatalf("unexpected counters: %+v", res)
	}

	outLines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(outLines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(outLines))
	}
	want := []string{"1", "3"}
	for i, line := range outLines {
		items, err := domain.DecodeSnapshot([]byte(line))
		if err != nil {
			t.Fatalf("decode line %d: %v", i, err)
		}
		if len(items) != 1 || items[0].ID != want[i] {
			t.Fatalf("line %d: unexpected items %+v", i, items)
		}
	}
}

func TestValidateJSONLStream_LegacyQtyIsCanonicalized(t *testing.T) {
	ctx := context.Background()
	input := `[{"id":9,"title":"Old","price":"5","qty":3}]`

	var out bytes.Buffer
	res, err := ValidateJSONLStream(ctx, NewSnapshotValidator(), strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 1 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	got := strings.TrimSpace(out.String())
	want := `[{"id":"9","title":"Old","price":5,"image":"","quantity":3}]`
	if got != want {
		t.Fatalf("canonical output:\nwant %s\ngot  %s", want, got)
	}
}

func TestValidateJSONLStream_LargeLine(t *testing.T) {
	ctx := context.Background()

	bigTitle := strings.Repeat("X", 200_000) // > 64KB
	line := `[{"id":1,"title":"` + bigTitle + `","price":1,"quantity":1}]`

	var out bytes.Buffer
	res, err := ValidateJSONLStream(ctx, NewSnapshotValidator(), strings.NewReader(line), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 1 || res.InvalidLinesCount != 0 {
		t.Fatalf("unexpected counters: %+v", res)
	}
}
