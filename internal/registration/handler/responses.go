package handler

import (
	"regform/internal/registration/rules"
	"regform/pkg/platform/httputil"
)

// PasswordCheckResponse is the HTTP response for POST /registration/password-check.
type PasswordCheckResponse struct {
	Status       string               `json:"status"`
	Valid        bool                 `json:"valid"`
	Requirements rules.PasswordReport `json:"requirements"`
	Missing      []string             `json:"missing"`
}

// FromPasswordReport converts a report into its response.
func FromPasswordReport(report rules.PasswordReport) *PasswordCheckResponse {
	missing := report.Missing()
	if missing == nil {
		missing = []string{}
	}
	return &PasswordCheckResponse{
		Status:       httputil.StatusSuccess,
		Valid:        report.OK(),
		Requirements: report,
		Missing:      missing,
	}
}
