package domain

import "time"

// Report represents a complete goal-conversion report
type Report struct {
	Title       string
	Site        string
	Page        string
	Goals       []string
	Granularity Granularity
	Period      TimePeriod
	Sections    []ReportSection
}

// TimePeriod represents a time range for the report
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents a single line within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
