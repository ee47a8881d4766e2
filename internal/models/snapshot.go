package models

// Snapshot is the complete dataset at a point in time. It is the unit of
// persistence: every mutation builds a new snapshot and writes the whole
// serialized document to the data slot.
type Snapshot struct {
	Users     []User     `json:"users"`
	Patients  []Patient  `json:"patients"`
	Incidents []Incident `json:"incidents"`
}

// Clone returns a deep enough copy for snapshot-replace semantics: the record
// slices are copied so the previous snapshot is never mutated in place.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Users:     make([]User, len(s.Users)),
		Patients:  make([]Patient, len(s.Patients)),
		Incidents: make([]Incident, len(s.Incidents)),
	}
	copy(out.Users, s.Users)
	copy(out.Patients, s.Patients)
	for i, in := range s.Incidents {
		if in.Files != nil {
			files := make([]Attachment, len(in.Files))
			copy(files, in.Files)
			in.Files = files
		}
		out.Incidents[i] = in
	}
	return out
}
