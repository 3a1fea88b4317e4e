package places

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"
)

// Finder is the slice of the places API the service needs.
type Finder interface {
	FindPlace(ctx context.Context, query string) (*Place, error)
	GetOpeningHours(ctx context.Context, placeID string) (*OpeningHours, error)
}

// Service answers "is X open" questions. Lookup failures are recovered into
// an apologetic reply naming the place, never surfaced raw.
type Service struct {
	finder Finder
	now    func() time.Time
}

func NewService(finder Finder) *Service {
	return &Service{finder: finder, now: time.Now}
}

// OpenHoursMessage reports when a place closes (if open now) or opens next.
// organization and city come straight from the matched intent parameters.
func (s *Service) OpenHoursMessage(ctx context.Context, organization, city string) string {
	location := organization + " " + city
	place, err := s.finder.FindPlace(ctx, location)
	if err != nil {
		log.Printf("find place failed: %v", err)
		return "I'm sorry, I can't find opening hours for " + location
	}

	hours, err := s.finder.GetOpeningHours(ctx, place.PlaceID)
	if err != nil {
		log.Printf("opening hours lookup failed: %v", err)
		return "I'm sorry, I can't find opening hours for " + place.Name
	}

	message, err := s.describeHours(place.Name, hours)
	if err != nil {
		log.Printf("opening hours for %s unusable: %v", place.Name, err)
		return "I'm sorry, I can't find opening hours for " + place.Name
	}
	return message
}

func (s *Service) describeHours(name string, hours *OpeningHours) (string, error) {
	now := s.now()
	if hours.OpenNow {
		day := int(now.Weekday())
		if day >= len(hours.Periods) || hours.Periods[day].Close == nil {
			return "", fmt.Errorf("no close time for weekday %d", day)
		}
		closeTime, err := humanTime(hours.Periods[day].Close.Time)
		if err != nil {
			return "", err
		}
		return "According to their website " + name + " will remain open until " + closeTime, nil
	}

	tomorrow := int(now.AddDate(0, 0, 1).Weekday())
	if tomorrow >= len(hours.Periods) || hours.Periods[tomorrow].Open == nil {
		return "", fmt.Errorf("no open time for weekday %d", tomorrow)
	}
	openTime, err := humanTime(hours.Periods[tomorrow].Open.Time)
	if err != nil {
		return "", err
	}
	return "According to their website " + name + " will remain closed until " + openTime, nil
}

// humanTime converts an "hhmm" schedule time to "h:mm am/pm".
func humanTime(hhmm string) (string, error) {
	if len(hhmm) != 4 {
		return "", fmt.Errorf("malformed schedule time %q", hhmm)
	}
	hours, err := strconv.Atoi(hhmm[:2])
	if err != nil || hours > 23 {
		return "", fmt.Errorf("malformed schedule time %q", hhmm)
	}
	suffix := "am"
	if hours >= 12 {
		suffix = "pm"
	}
	hours = hours % 12
	if hours == 0 {
		hours = 12
	}
	return fmt.Sprintf("%d:%s %s", hours, hhmm[2:], suffix), nil
}
