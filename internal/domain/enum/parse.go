package enum

// ParseJobCardStatus maps a status name to its enum value
func ParseJobCardStatus(s string) (JobCardStatus, bool) {
	switch s {
	case "Pending":
		return JobCardStatusPending, true
	case "InProgress":
		return JobCardStatusInProgress, true
	case "Completed":
		return JobCardStatusCompleted, true
	case "Delivered":
		return JobCardStatusDelivered, true
	case "Cancelled":
		return JobCardStatusCancelled, true
	}
	return JobCardStatusPending, false
}

// ParseJobCardPriority maps a priority name to its enum value
func ParseJobCardPriority(s string) (JobCardPriority, bool) {
	switch s {
	case "Low":
		return PriorityLow, true
	case "Normal":
		return PriorityNormal, true
	case "High":
		return PriorityHigh, true
	case "Urgent":
		return PriorityUrgent, true
	}
	return PriorityNormal, false
}

// ParsePaymentStatus maps a payment status name to its enum value
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch s {
	case "Unpaid":
		return PaymentStatusUnpaid, true
	case "Paid":
		return PaymentStatusPaid, true
	case "Cancelled":
		return PaymentStatusCancelled, true
	}
	return PaymentStatusUnpaid, false
}
