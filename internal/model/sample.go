// Package model holds the in-memory student and lesson books.
package model

import (
	"time"

	"github.com/yndnr/teachwhat-go/internal/core/domain"
)

type sampleStudent struct {
	name, phone, email, address string
	tags                        []string
}

var sampleStudents = []sampleStudent{
	{"Alex Yeoh", "87438807", "alexyeoh@example.com", "Blk 30 Geylang Street 29, #06-40", []string{"friends"}},
	{"Bernice Yu", "99272758", "berniceyu@example.com", "Blk 30 Lorong 3 Serangoon Gardens, #07-18", []string{"colleagues", "friends"}},
	{"Charlotte Oliveiro", "93210283", "charlotte@example.com", "Blk 11 Ang Mo Kio Street 74, #11-04", []string{"neighbours"}},
	{"David Li", "91031282", "lidavid@example.com", "Blk 436 Serangoon Gardens Street 26, #16-43", []string{"family"}},
	{"Irfan Ibrahim", "92492021", "irfan@example.com", "Blk 47 Tampines Street 20, #17-35", []string{"classmates"}},
	{"Roy Balakrishnan", "92624417", "royb@example.com", "Blk 45 Aljunied Street 85, #11-31", []string{"colleagues"}},
}

var sampleLessons = []struct {
	title, subject string
}{
	{"Make up lesson for George", "Geography"},
	{"Trial lesson for Jake", "Biology"},
	{"Make up lesson for Henry", "Physics"},
}

// SampleSnapshot builds the data shown on first launch. Lessons are
// scheduled 10, 20 and 30 days after now.
func SampleSnapshot(now time.Time) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{}

	for _, ss := range sampleStudents {
		tags, err := domain.NewTagSet(ss.tags)
		if err != nil {
			return nil, err
		}
		s, err := domain.NewStudent(domain.Name(ss.name), domain.Phone(ss.phone),
			domain.Email(ss.email), domain.Address(ss.address), tags)
		if err != nil {
			return nil, err
		}
		snap.Students = append(snap.Students, s)
	}

	for i, sl := range sampleLessons {
		date := domain.LessonDateOf(now.AddDate(0, 0, 10*(i+1)))
		l, err := domain.NewLesson(domain.LessonTitle(sl.title), domain.Subject(sl.subject), date, 2)
		if err != nil {
			return nil, err
		}
		snap.Lessons = append(snap.Lessons, l)
	}

	return snap, snap.Validate()
}
