package monitor

import "time"

type Status struct {
	Store     bool      `json:"store"`
	SlotBytes int       `json:"slot_bytes"`
	FileBytes int64     `json:"file_bytes"`
	Advisor   bool      `json:"advisor"`
	LastCheck time.Time `json:"last_check"`
}
