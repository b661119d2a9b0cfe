package runid

import (
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/rpsls/internal/randutil"
)

func TestGenerateValid(t *testing.T) {
	id := NewGenerator(nil, nil).Generate()
	if err := Validate(id); err != nil {
		t.Errorf("generated ID failed validation: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("expected 36 characters, got %d", len(id))
	}
}

func TestGenerateUnique(t *testing.T) {
	gen := NewGenerator(nil, nil)
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.Generate()
		if ids[id] {
			t.Errorf("duplicate ID generated: %s", id)
		}
		ids[id] = true
	}
}

func TestGenerateDeterministic(t *testing.T) {
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))

	a := NewGenerator(clock, randutil.New(9)).Generate()
	b := NewGenerator(clock, randutil.New(9)).Generate()
	if a != b {
		t.Errorf("same clock and seed gave %s and %s", a, b)
	}
}

func TestGenerateTimeSorted(t *testing.T) {
	clock := quartz.NewMock(t)
	gen := NewGenerator(clock, randutil.New(1))

	var ids []string
	for i := 0; i < 10; i++ {
		ids = append(ids, gen.Generate())
		clock.Advance(time.Millisecond)
	}

	for i := 1; i < len(ids); i++ {
		if strings.Compare(ids[i-1], ids[i]) >= 0 {
			t.Errorf("IDs not sorted: %s >= %s", ids[i-1], ids[i])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid v7", id: "01943f2a-7c4e-7b3a-9f00-123456789abc"},
		{name: "version 4", id: "7d444840-9dc0-41d7-8a6e-0e5b4f2d9a11", wantErr: true},
		{name: "garbage", id: "not-a-uuid", wantErr: true},
		{name: "empty", id: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
