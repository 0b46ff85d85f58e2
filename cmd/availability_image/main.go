package main

import (
	"fmt"
	"os"

	"github.com/hamyar-edu/advising_bot/internal/catalog"
	"github.com/hamyar-edu/advising_bot/internal/model"
	"github.com/hamyar-edu/advising_bot/internal/notify"
)

// Renders a sample availability grid to availability.png for eyeballing the
// raster layout without a running bot.
func main() {
	catalogs := catalog.Default()

	availability := model.Availability{
		"شنبه":     {"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00"},
		"یکشنبه":   {"08:00", "08:30", "09:00", "09:30", "10:00"},
		"دوشنبه":   {"14:00", "14:30", "15:00", "15:30", "16:00"},
		"سه‌شنبه":  {"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00"},
		"چهارشنبه": {"14:00", "14:30", "15:00"},
	}

	png, err := notify.RenderAvailabilityGrid(availability, catalogs.Weekdays, catalogs.TimeSlots)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile("availability.png", png, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("wrote availability.png")
}
