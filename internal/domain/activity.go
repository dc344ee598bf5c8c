package domain

// Activity describes one extracurricular offering. The activity name serves
// as the registry key and is not repeated inside the record.
type Activity struct {
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Clone returns a copy whose participant slice does not alias the receiver's.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
