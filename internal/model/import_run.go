package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportRun is the persisted summary of one bulk validation pass.
type ImportRun struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Source       string    `gorm:"type:text;not null" json:"source"`
	ValidCount   int       `gorm:"not null" json:"valid_count"`
	InvalidCount int       `gorm:"not null" json:"invalid_count"`
	StartedAt    time.Time `gorm:"not null" json:"started_at"`
	FinishedAt   time.Time `gorm:"not null" json:"finished_at"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ImportRun) TableName() string {
	return "import_runs"
}

func (r *ImportRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// InvalidEntry is a rejected row. Normalized is empty when the input was
// too short to normalize.
type InvalidEntry struct {
	Position   int    `json:"position"`
	Raw        string `json:"raw"`
	Normalized string `json:"normalized"`
	Reason     string `json:"reason"`
}

// ImportReport tallies the outcome of a bulk validation pass.
type ImportReport struct {
	RunID      uuid.UUID      `json:"run_id"`
	Source     string         `json:"source"`
	Valid      int            `json:"valid"`
	Invalid    int            `json:"invalid"`
	Rejected   []InvalidEntry `json:"rejected"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
}

func NewImportReport(source string, startedAt time.Time) *ImportReport {
	return &ImportReport{
		RunID:     uuid.New(),
		Source:    source,
		StartedAt: startedAt,
	}
}

func (r *ImportReport) AddValid() {
	r.Valid++
}

func (r *ImportReport) AddInvalid(entry InvalidEntry) {
	r.Invalid++
	r.Rejected = append(r.Rejected, entry)
}

func (r *ImportReport) Total() int {
	return r.Valid + r.Invalid
}

func (r *ImportReport) Summary() string {
	return fmt.Sprintf("Valid: %d | Invalid: %d", r.Valid, r.Invalid)
}

func (r *ImportReport) ToRun() *ImportRun {
	return &ImportRun{
		ID:           r.RunID,
		Source:       r.Source,
		ValidCount:   r.Valid,
		InvalidCount: r.Invalid,
		StartedAt:    r.StartedAt,
		FinishedAt:   r.FinishedAt,
	}
}
