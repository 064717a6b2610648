package api

import "time"

// Web API representation of a generated report.

type TimePeriod struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration_days"`
}

type ReportDetail struct {
	Name        string      `json:"name"`
	Value       interface{} `json:"value"`
	Unit        string      `json:"unit,omitempty"`
	Description string      `json:"description,omitempty"`
}

type ReportSection struct {
	Title   string                 `json:"title"`
	Summary map[string]interface{} `json:"summary,omitempty"`
	Details []ReportDetail         `json:"details,omitempty"`
}

type Report struct {
	Site        string          `json:"site"`
	Page        string          `json:"page"`
	Goals       []string        `json:"goals"`
	Granularity string          `json:"granularity"`
	Period      TimePeriod      `json:"period"`
	Sections    []ReportSection `json:"sections"`
}
