// Package domain defines the core domain models for TeachWhat.
package domain

// Snapshot is the complete persisted state: both books in display order.
type Snapshot struct {
	Students []*Student `json:"students"`
	Lessons  []*Lesson  `json:"lessons"`
}

// Validate checks every entity and that assignments refer to known
// entities on both sides.
func (s *Snapshot) Validate() error {
	students := make(map[string]*Student, len(s.Students))
	for _, st := range s.Students {
		if err := st.Validate(); err != nil {
			return ErrDataConversion.WithDetails(string(st.Name)).WithCause(err)
		}
		if _, dup := students[st.ID]; dup {
			return ErrDataConversion.WithDetails("duplicate student id " + st.ID)
		}
		students[st.ID] = st
	}
	lessons := make(map[string]*Lesson, len(s.Lessons))
	for _, l := range s.Lessons {
		if err := l.Validate(); err != nil {
			return ErrDataConversion.WithDetails(string(l.Title)).WithCause(err)
		}
		if _, dup := lessons[l.ID]; dup {
			return ErrDataConversion.WithDetails("duplicate lesson id " + l.ID)
		}
		lessons[l.ID] = l
	}

	for _, st := range s.Students {
		for _, lid := range st.LessonIDs {
			l, ok := lessons[lid]
			if !ok || !l.HasStudent(st.ID) {
				return ErrDataConversion.WithDetails("dangling assignment " + st.ID + " -> " + lid)
			}
		}
	}
	for _, l := range s.Lessons {
		for _, sid := range l.StudentIDs {
			st, ok := students[sid]
			if !ok || !st.HasLesson(l.ID) {
				return ErrDataConversion.WithDetails("dangling assignment " + l.ID + " -> " + sid)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		Students: make([]*Student, len(s.Students)),
		Lessons:  make([]*Lesson, len(s.Lessons)),
	}
	for i, st := range s.Students {
		c.Students[i] = st.Clone()
	}
	for i, l := range s.Lessons {
		c.Lessons[i] = l.Clone()
	}
	return c
}
