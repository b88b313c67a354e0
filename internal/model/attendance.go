package model

import "sort"

// AttendanceRecord marks one player as present on one date.
// Seq is the 1-based arrival order and stays contiguous per date;
// ID is the insertion counter used to break ties deterministically.
type AttendanceRecord struct {
	Date      MatchDate
	Handle    Handle
	Seq       int
	ArrivedAt string // HH:MM, local club time
	Note      string
	OptedOut  bool // present but not playing
	LeftEarly bool // played the first half, gone for the second
	ID        int
}

// AttendanceSheet is the full attendance state for one date.
// It is stored and replaced as a single document so that every
// mutation of a date's records is atomic in the backing store.
type AttendanceSheet struct {
	Date    MatchDate
	NextID  int
	Records []AttendanceRecord
}

// NewAttendanceSheet creates an empty sheet for a date
func NewAttendanceSheet(date MatchDate) *AttendanceSheet {
	return &AttendanceSheet{Date: date, NextID: 1}
}

// Find returns the record for a handle, or nil
func (s *AttendanceSheet) Find(handle Handle) *AttendanceRecord {
	key := handle.Key()
	for i := range s.Records {
		if s.Records[i].Handle.Key() == key {
			return &s.Records[i]
		}
	}
	return nil
}

// MaxSeq returns the highest sequence number on the sheet, 0 if empty
func (s *AttendanceSheet) MaxSeq() int {
	max := 0
	for i := range s.Records {
		if s.Records[i].Seq > max {
			max = s.Records[i].Seq
		}
	}
	return max
}

// Sorted returns a copy of the records ordered by sequence ascending,
// insertion id breaking ties
func (s *AttendanceSheet) Sorted() []AttendanceRecord {
	out := make([]AttendanceRecord, len(s.Records))
	copy(out, s.Records)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Seq != out[j].Seq {
			return out[i].Seq < out[j].Seq
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Remove deletes the record for a handle and returns whether it existed
func (s *AttendanceSheet) Remove(handle Handle) bool {
	key := handle.Key()
	for i := range s.Records {
		if s.Records[i].Handle.Key() == key {
			s.Records = append(s.Records[:i], s.Records[i+1:]...)
			return true
		}
	}
	return false
}

// Resequence renumbers all records to a contiguous 1..k range,
// preserving the prior (Seq, ID) order
func (s *AttendanceSheet) Resequence() {
	sorted := s.Sorted()
	for i := range sorted {
		sorted[i].Seq = i + 1
	}
	s.Records = sorted
}
