package places

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeFinder struct {
	place    *Place
	hours    *OpeningHours
	findErr  error
	hoursErr error
}

func (f *fakeFinder) FindPlace(_ context.Context, _ string) (*Place, error) {
	return f.place, f.findErr
}

func (f *fakeFinder) GetOpeningHours(_ context.Context, _ string) (*OpeningHours, error) {
	return f.hours, f.hoursErr
}

// Wednesday, April 8 2020.
var testNow = time.Date(2020, 4, 8, 10, 0, 0, 0, time.UTC)

func weeklyPeriods(open, close string) []Period {
	periods := make([]Period, 7)
	for i := range periods {
		periods[i] = Period{
			Open:  &PeriodTime{Time: open},
			Close: &PeriodTime{Time: close},
		}
	}
	return periods
}

func newTestService(f *fakeFinder) *Service {
	svc := NewService(f)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestOpenHoursMessageOpenNow(t *testing.T) {
	svc := newTestService(&fakeFinder{
		place: &Place{PlaceID: "p1", Name: "City Hospital"},
		hours: &OpeningHours{OpenNow: true, Periods: weeklyPeriods("0800", "2130")},
	})

	got := svc.OpenHoursMessage(context.Background(), "City Hospital", "Springfield")
	want := "According to their website City Hospital will remain open until 9:30 pm"
	if got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestOpenHoursMessageClosedNow(t *testing.T) {
	svc := newTestService(&fakeFinder{
		place: &Place{PlaceID: "p1", Name: "City Hospital"},
		hours: &OpeningHours{OpenNow: false, Periods: weeklyPeriods("0905", "2130")},
	})

	got := svc.OpenHoursMessage(context.Background(), "City Hospital", "Springfield")
	want := "According to their website City Hospital will remain closed until 9:05 am"
	if got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestOpenHoursMessageFindFailure(t *testing.T) {
	svc := newTestService(&fakeFinder{findErr: errors.New("no candidates")})

	got := svc.OpenHoursMessage(context.Background(), "City Hospital", "Springfield")
	want := "I'm sorry, I can't find opening hours for City Hospital Springfield"
	if got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestOpenHoursMessageHoursFailure(t *testing.T) {
	svc := newTestService(&fakeFinder{
		place:    &Place{PlaceID: "p1", Name: "City Hospital"},
		hoursErr: errors.New("no opening hours"),
	})

	got := svc.OpenHoursMessage(context.Background(), "City Hospital", "Springfield")
	want := "I'm sorry, I can't find opening hours for City Hospital"
	if got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestOpenHoursMessageMissingCloseTime(t *testing.T) {
	svc := newTestService(&fakeFinder{
		place: &Place{PlaceID: "p1", Name: "City Hospital"},
		hours: &OpeningHours{OpenNow: true, Periods: []Period{}},
	})

	got := svc.OpenHoursMessage(context.Background(), "City Hospital", "Springfield")
	want := "I'm sorry, I can't find opening hours for City Hospital"
	if got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestHumanTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0000", "12:00 am"},
		{"0905", "9:05 am"},
		{"1200", "12:00 pm"},
		{"1215", "12:15 pm"},
		{"2130", "9:30 pm"},
	}
	for _, tt := range tests {
		got, err := humanTime(tt.in)
		if err != nil {
			t.Fatalf("humanTime(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("humanTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "930", "25:0", "9999"} {
		if _, err := humanTime(bad); err == nil {
			t.Errorf("humanTime(%q) succeeded, want error", bad)
		}
	}
}
