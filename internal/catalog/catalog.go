// Package catalog holds the fixed lookup tables of the advising workflow:
// weekdays, the half-hour slot grid, session topics, referral targets,
// appointment types and rejection reasons. Adding an entry is a data change,
// not a code change: catalogs are loaded from a JSON file at startup and
// validated before anything else runs.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// AppointmentType pairs the stored value with its display label.
type AppointmentType struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Catalog struct {
	Weekdays         []string          `json:"weekdays"`
	TimeSlots        []string          `json:"time_slots"`
	SessionTopics    []string          `json:"session_topics"`
	ReferralTopic    string            `json:"referral_topic"`
	ReferralTargets  []string          `json:"referral_targets"`
	AppointmentTypes []AppointmentType `json:"appointment_types"`
	RejectionReasons []string          `json:"rejection_reasons"`
	Semesters        []string          `json:"semesters"`
}

// Default returns the built-in catalogs, matching the deployed configuration
// file. Used when no CATALOG_PATH is configured and as the baseline in tests.
func Default() *Catalog {
	return &Catalog{
		Weekdays: []string{
			"شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنجشنبه", "جمعه",
		},
		TimeSlots: []string{
			"08:00", "08:30", "09:00", "09:30", "10:00", "10:30",
			"11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
			"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
			"17:00", "17:30", "18:00", "18:30", "19:00", "19:30",
		},
		SessionTopics: []string{
			"جلسه بررسی افت تحصیلی",
			"جلسه بررسی مشروطی",
			"جلسه مشورت آموزشی",
			"جلسه مشورت پژوهشی",
			"جلسه اعلام وضعیت روانی و خانوادگی",
			"جلسه مشورت امور مالی و معرفی به واحد‌های مربوطه",
			"جلسه مشورت شغلی",
			"جلسه سوال متفرقه",
			"ارجاع",
		},
		ReferralTopic: "ارجاع",
		ReferralTargets: []string{
			"مشاوره", "مسئول مشاور", "آموزش", "مدیر گروه",
		},
		AppointmentTypes: []AppointmentType{
			{Value: "individual-in-person", Label: "فردی - حضوری"},
			{Value: "individual-virtual", Label: "فردی - مجازی"},
			{Value: "individual-phone", Label: "فردی - تلفنی"},
			{Value: "group", Label: "گروهی"},
		},
		RejectionReasons: []string{
			"وقت ندارم",
			"گروه دارم",
			"سایر (تشریح دلیل)",
		},
		Semesters: []string{
			"1404-1", "1403-2", "1403-1", "1402-2",
		},
	}
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate catalog file %s: %w", path, err)
	}
	return &c, nil
}

var slotLabelRe = regexp.MustCompile(`^\d{2}:(00|30)$`)

// Validate checks catalog shape at startup so a broken data change fails
// fast instead of surfacing as odd booking errors later.
func (c *Catalog) Validate() error {
	if len(c.Weekdays) != 7 {
		return fmt.Errorf("expected 7 weekdays, got %d", len(c.Weekdays))
	}
	if err := unique(c.Weekdays, "weekday"); err != nil {
		return err
	}
	if len(c.TimeSlots) == 0 {
		return fmt.Errorf("time slot grid is empty")
	}
	for _, s := range c.TimeSlots {
		if !slotLabelRe.MatchString(s) {
			return fmt.Errorf("time slot %q is not on the half-hour grid", s)
		}
	}
	if err := unique(c.TimeSlots, "time slot"); err != nil {
		return err
	}
	if len(c.SessionTopics) == 0 {
		return fmt.Errorf("session topic catalog is empty")
	}
	if c.ReferralTopic == "" {
		return fmt.Errorf("referral topic is not set")
	}
	if !contains(c.SessionTopics, c.ReferralTopic) {
		return fmt.Errorf("referral topic %q is not in the session topic catalog", c.ReferralTopic)
	}
	if len(c.ReferralTargets) == 0 {
		return fmt.Errorf("referral target catalog is empty")
	}
	if len(c.AppointmentTypes) == 0 {
		return fmt.Errorf("appointment type catalog is empty")
	}
	if len(c.RejectionReasons) == 0 {
		return fmt.Errorf("rejection reason catalog is empty")
	}
	return nil
}

func (c *Catalog) ValidWeekday(day string) bool {
	return contains(c.Weekdays, day)
}

func (c *Catalog) ValidTimeSlot(label string) bool {
	return contains(c.TimeSlots, label)
}

func (c *Catalog) ValidAppointmentType(value string) bool {
	for _, t := range c.AppointmentTypes {
		if t.Value == value {
			return true
		}
	}
	return false
}

// AppointmentTypeLabel returns the display label for a type value, falling
// back to the value itself.
func (c *Catalog) AppointmentTypeLabel(value string) string {
	for _, t := range c.AppointmentTypes {
		if t.Value == value {
			return t.Label
		}
	}
	return value
}

// ValidBookingTopic reports whether the topic may be selected when booking:
// any catalog topic except the reserved referral topic.
func (c *Catalog) ValidBookingTopic(topic string) bool {
	return contains(c.SessionTopics, topic) && topic != c.ReferralTopic
}

func (c *Catalog) ValidTopic(topic string) bool {
	return contains(c.SessionTopics, topic)
}

func (c *Catalog) IsReferralTopic(topic string) bool {
	return topic == c.ReferralTopic
}

func (c *Catalog) ValidReferralTarget(target string) bool {
	return contains(c.ReferralTargets, target)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func unique(list []string, what string) error {
	seen := make(map[string]struct{}, len(list))
	for _, v := range list {
		if _, ok := seen[v]; ok {
			return fmt.Errorf("duplicate %s %q", what, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}
