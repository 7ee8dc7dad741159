package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// JobCardPriority represents how urgently a repair should be handled
type JobCardPriority int

const (
	PriorityLow    JobCardPriority = 0
	PriorityNormal JobCardPriority = 1
	PriorityHigh   JobCardPriority = 2
	PriorityUrgent JobCardPriority = 3
)

func (p JobCardPriority) String() string {
	names := [...]string{"Low", "Normal", "High", "Urgent"}
	if int(p) < 0 || int(p) >= len(names) {
		return "Normal"
	}
	return names[p]
}

func (p JobCardPriority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *JobCardPriority) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = JobCardPriority(i)
		return nil
	}
	switch str {
	case "Low":
		*p = PriorityLow
	case "Normal":
		*p = PriorityNormal
	case "High":
		*p = PriorityHigh
	case "Urgent":
		*p = PriorityUrgent
	}
	return nil
}

func (p JobCardPriority) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *JobCardPriority) Scan(value interface{}) error {
	if value == nil {
		*p = PriorityNormal
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = JobCardPriority(v)
	case int:
		*p = JobCardPriority(v)
	}
	return nil
}
