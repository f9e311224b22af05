package analytics

import "time"

// UsageLog records one processing batch attributed to a user.
type UsageLog struct {
	ID               string    `json:"id"`
	UserEmail        string    `json:"userEmail"`
	ResumesProcessed int       `json:"resumesProcessed"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ReportRow is one line of the admin usage report, joining account data
// with aggregated usage activity.
type ReportRow struct {
	Email            string     `json:"email"`
	FullName         string     `json:"fullName"`
	Role             string     `json:"role"`
	LoginCount       int        `json:"loginCount"`
	BatchCount       int        `json:"batchCount"`
	ResumesProcessed int        `json:"resumesProcessed"`
	LastActivity     *time.Time `json:"lastActivity,omitempty"`
}

// Report is the full admin analytics payload.
type Report struct {
	Rows         []ReportRow `json:"rows"`
	TotalUsers   int         `json:"totalUsers"`
	TotalBatches int         `json:"totalBatches"`
	TotalResumes int         `json:"totalResumes"`
	GeneratedAt  time.Time   `json:"generatedAt"`
}
