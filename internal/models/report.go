package models

import "time"

// Report types offered by the medical-reports dashboard.
const (
	ReportTypeSummary   = "summary"
	ReportTypeScreening = "screening"
	ReportTypeReferral  = "referral"
)

// MedicalReportSummary is one row of the vision-screening dashboard.
type MedicalReportSummary struct {
	Timestamp            time.Time `json:"timestamp"`
	ReportType           string    `json:"report_type"`
	School               string    `json:"school"`
	TotalStudents        int       `json:"total_students"`
	TotalScreenings      int       `json:"total_screenings"`
	CompletedScreenings  int       `json:"completed_screenings"`
	PendingScreenings    int       `json:"pending_screenings"`
	VisionIssuesDetected int       `json:"vision_issues_detected"`
	ReferralsRequired    int       `json:"referrals_required"`
	GlassesPrescribed    int       `json:"glasses_prescribed"`
}

// SampleReportSummary builds the synthetic record the dashboard export is
// generated from. The export intentionally does not read live data.
func SampleReportSummary(reportType, school string, now time.Time) MedicalReportSummary {
	return MedicalReportSummary{
		Timestamp:            now,
		ReportType:           reportType,
		School:               school,
		TotalStudents:        450,
		TotalScreenings:      430,
		CompletedScreenings:  410,
		PendingScreenings:    20,
		VisionIssuesDetected: 52,
		ReferralsRequired:    18,
		GlassesPrescribed:    34,
	}
}
