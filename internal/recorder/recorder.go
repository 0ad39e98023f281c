package recorder

import "CraneAppraiser/internal/model"

// AppraisalRecord holds everything worth keeping about one appraisal:
// the request, the breakdown, and the scores.
type AppraisalRecord struct {
	RequestID string
	Spec      *model.EquipmentSpec
	Result    *model.ValuationResult
}

// RefreshEvent records one reference-snapshot rebuild.
type RefreshEvent struct {
	TablesLoaded int
	ListingCount int
	ProfileCount int
	SegmentCount int
}

// Recorder persists appraisal history for later analysis.
type Recorder interface {
	RecordAppraisal(rec *AppraisalRecord) error
	RecordRefresh(evt *RefreshEvent) error
	Close() error
}
