package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// JobCardStatus represents the lifecycle state of a job card
type JobCardStatus int

const (
	JobCardStatusPending    JobCardStatus = 0
	JobCardStatusInProgress JobCardStatus = 1
	JobCardStatusCompleted  JobCardStatus = 2
	JobCardStatusDelivered  JobCardStatus = 3
	JobCardStatusCancelled  JobCardStatus = 4
)

func (s JobCardStatus) String() string {
	names := [...]string{"Pending", "InProgress", "Completed", "Delivered", "Cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Pending"
	}
	return names[s]
}

// CanTransitionTo reports whether the status machine allows moving to next.
// The forward path is Pending -> InProgress -> Completed -> Delivered;
// Cancelled is reachable from any non-terminal state.
func (s JobCardStatus) CanTransitionTo(next JobCardStatus) bool {
	if s == next {
		return false
	}
	switch s {
	case JobCardStatusPending:
		return next == JobCardStatusInProgress || next == JobCardStatusCancelled
	case JobCardStatusInProgress:
		return next == JobCardStatusCompleted || next == JobCardStatusCancelled
	case JobCardStatusCompleted:
		return next == JobCardStatusDelivered || next == JobCardStatusCancelled
	default:
		// Delivered and Cancelled are terminal
		return false
	}
}

// IsInvoiceable reports whether an invoice may be generated in this state.
func (s JobCardStatus) IsInvoiceable() bool {
	return s == JobCardStatusCompleted || s == JobCardStatusDelivered
}

func (s JobCardStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *JobCardStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = JobCardStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = JobCardStatusPending
	case "InProgress":
		*s = JobCardStatusInProgress
	case "Completed":
		*s = JobCardStatusCompleted
	case "Delivered":
		*s = JobCardStatusDelivered
	case "Cancelled":
		*s = JobCardStatusCancelled
	}
	return nil
}

func (s JobCardStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *JobCardStatus) Scan(value interface{}) error {
	if value == nil {
		*s = JobCardStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = JobCardStatus(v)
	case int:
		*s = JobCardStatus(v)
	}
	return nil
}
