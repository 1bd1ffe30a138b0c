package filter

import (
	"testing"
	"time"

	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
)

func TestParseDays(t *testing.T) {
	tests := []struct {
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{input: "MWF", want: []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
		{input: "TR", want: []time.Weekday{time.Tuesday, time.Thursday}},
		{input: "tr", want: []time.Weekday{time.Tuesday, time.Thursday}},
		{input: "SU", want: []time.Weekday{time.Saturday, time.Sunday}},
		{input: "", wantErr: true},
		{input: "XYZ", wantErr: true},
		{input: "Th", wantErr: true}, // H is not a day letter
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDays(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDays(%q) failed: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "5pm", want: 17 * 60},
		{input: "5:30pm", want: 17*60 + 30},
		{input: "9am", want: 9 * 60},
		{input: "12am", want: 0},
		{input: "12pm", want: 12 * 60},
		{input: "17:00", want: 17 * 60},
		{input: "17", want: 17 * 60},
		{input: "8:15", want: 8*60 + 15},
		{input: "10:15 AM", want: 10*60 + 15},
		{input: "25:00", wantErr: true},
		{input: "13pm", wantErr: true},
		{input: "9:75", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTime(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTime(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDeliveries(t *testing.T) {
	got, err := ParseDeliveries("online, Hybrid")
	if err != nil {
		t.Fatalf("ParseDeliveries failed: %v", err)
	}
	if len(got) != 2 || got[0] != schedule.DeliveryOnline || got[1] != schedule.DeliveryHybrid {
		t.Errorf("got %v", got)
	}

	if _, err := ParseDeliveries("correspondence"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
	if _, err := ParseDeliveries(""); err == nil {
		t.Error("expected an error for an empty list")
	}
}
