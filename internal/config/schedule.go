package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type ScheduleConfig struct {
	Enabled bool
	// Weekday the weekly session is held on.
	SessionWeekday time.Weekday
	// ReportInterval is how often open slots of the upcoming session are reported.
	ReportInterval time.Duration
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func NewScheduleConfig() *ScheduleConfig {
	weekday, ok := weekdays[strings.ToLower(getEnv("SESSION_WEEKDAY", "thursday"))]
	if !ok {
		weekday = time.Thursday
	}
	intervalMin, err := strconv.Atoi(os.Getenv("OPEN_SLOT_REPORT_INTERVAL_MIN"))
	if err != nil || intervalMin <= 0 {
		intervalMin = 60
	}
	return &ScheduleConfig{
		Enabled:        os.Getenv("OPEN_SLOT_REPORT_ENABLED") != "false",
		SessionWeekday: weekday,
		ReportInterval: time.Duration(intervalMin) * time.Minute,
	}
}
