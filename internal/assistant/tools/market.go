package tools

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/cleitonmarx/symbiont-agenthub/internal/common"
)

// marketLocation is the timezone of the NYSE and NASDAQ trading sessions.
var marketLocation = loadMarketLocation()

func loadMarketLocation() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.FixedZone("EST", -5*60*60)
	}
	return loc
}

// isMarketOpen reports whether now falls in the regular trading session,
// weekdays from 9:30 to 16:00 Eastern Time. Holidays are not considered.
func isMarketOpen(now time.Time) bool {
	et := now.In(marketLocation)
	switch et.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	minutes := et.Hour()*60 + et.Minute()
	return minutes >= 9*60+30 && minutes < 16*60
}

func marketStatus(open bool) string {
	if open {
		return "🟢 Market Open"
	}
	return "🔴 Market Closed"
}

func tradingSession(open bool) string {
	if open {
		return "Regular Hours"
	}
	return "After Hours"
}

func marketTimestamp(now time.Time) string {
	return now.In(marketLocation).Format("2006-01-02 15:04:05 MST")
}

func formatMarketCap(v float64) string {
	switch {
	case v >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	default:
		return "$" + common.FormatDecimal(v, 0)
	}
}

func formatVolume(v int64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.1fM shares", float64(v)/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fK shares", float64(v)/1e3)
	default:
		return common.FormatInteger(v) + " shares"
	}
}

func formatPERatio(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}

// timeAgo renders the age of a news item relative to now.
func timeAgo(published, now time.Time) string {
	if published.IsZero() {
		return "Recently"
	}
	elapsed := now.Sub(published)
	switch {
	case elapsed < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(elapsed.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(elapsed.Hours()/24))
	}
}

func trendArrow(up bool) string {
	if up {
		return "📈"
	}
	return "📉"
}
