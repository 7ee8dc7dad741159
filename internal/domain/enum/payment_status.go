package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentStatus represents the payment state of an invoice
type PaymentStatus int

const (
	PaymentStatusUnpaid    PaymentStatus = 0
	PaymentStatusPaid      PaymentStatus = 1
	PaymentStatusCancelled PaymentStatus = 2
)

func (s PaymentStatus) String() string {
	names := [...]string{"Unpaid", "Paid", "Cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Unpaid"
	}
	return names[s]
}

// IsSettled reports whether the invoice can no longer accept payments.
func (s PaymentStatus) IsSettled() bool {
	return s == PaymentStatusPaid || s == PaymentStatusCancelled
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	switch str {
	case "Unpaid":
		*s = PaymentStatusUnpaid
	case "Paid":
		*s = PaymentStatusPaid
	case "Cancelled":
		*s = PaymentStatusCancelled
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}
