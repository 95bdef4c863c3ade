package domain

import (
	"fmt"
	"strings"
	"time"
)

type Deliverable struct {
	DeliverableID int64      `json:"deliverableId"`
	ProjectID     int64      `json:"projectId"`
	Title         string     `json:"title"`
	FileName      string     `json:"fileName,omitempty"`
	FileURL       string     `json:"fileUrl,omitempty"`
	Approved      bool       `json:"approved"`
	UploadedBy    int64      `json:"uploadedBy,omitempty"`
	UploadedAt    *time.Time `json:"uploadedAt,omitempty"`
}

func (d Deliverable) EntityID() int64 { return d.DeliverableID }

func (d Deliverable) Validate() error {
	return requirePositiveID("deliverable", "deliverableId", d.DeliverableID)
}

// DeliverableUpload describes the metadata sent alongside an uploaded file.
type DeliverableUpload struct {
	ProjectID  int64
	Title      string
	UploadedBy int64
	FileName   string
}

func (u DeliverableUpload) Validate() error {
	if u.ProjectID <= 0 {
		return fmt.Errorf("deliverable project id is required")
	}
	if strings.TrimSpace(u.Title) == "" {
		return fmt.Errorf("deliverable title is required")
	}
	if strings.TrimSpace(u.FileName) == "" {
		return fmt.Errorf("deliverable file name is required")
	}

	return nil
}
