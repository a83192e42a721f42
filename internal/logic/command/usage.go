// Package command provides the executable commands of TeachWhat.
package command

import "sort"

// Command words.
const (
	WordAddStudent      = "add-student"
	WordDeleteStudent   = "delete-student"
	WordEditStudent     = "edit-student"
	WordFindStudent     = "find-student"
	WordListStudents    = "list-students"
	WordViewStudentInfo = "view-student-info"
	WordAddLesson       = "add-lesson"
	WordDeleteLesson    = "delete-lesson"
	WordEditLesson      = "edit-lesson"
	WordFindLesson      = "find-lesson"
	WordListLessons     = "list-lessons"
	WordViewLessonInfo  = "view-lesson-info"
	WordAssign          = "assign"
	WordUnassign        = "unassign"
	WordClear           = "clear"
	WordHelp            = "help"
	WordExit            = "exit"
)

var usages = map[string]string{
	WordAddStudent: WordAddStudent + ": Adds a student to the student book.\n" +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...\n" +
		"Example: " + WordAddStudent + " n/John Doe p/98765432 e/johnd@example.com " +
		"a/311, Clementi Ave 2, #02-25 t/friends t/owesMoney",
	WordDeleteStudent: WordDeleteStudent + ": Deletes the student identified by the index number " +
		"used in the displayed student list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + WordDeleteStudent + " 1",
	WordEditStudent: WordEditStudent + ": Edits the details of the student identified by the index " +
		"number used in the displayed student list. Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]...\n" +
		"Example: " + WordEditStudent + " 1 p/91234567 e/johndoe@example.com",
	WordFindStudent: WordFindStudent + ": Finds all students whose names contain any of the specified " +
		"keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + WordFindStudent + " alice bob charlie",
	WordListStudents: WordListStudents + ": Lists all students.",
	WordViewStudentInfo: WordViewStudentInfo + ": Shows the details of the student identified by the " +
		"index number used in the displayed student list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + WordViewStudentInfo + " 1",
	WordAddLesson: WordAddLesson + ": Adds a lesson to the lesson book.\n" +
		"Parameters: l/TITLE s/SUBJECT d/DATE (YYYY-MM-DD) h/DURATION_IN_HOURS\n" +
		"Example: " + WordAddLesson + " l/Trial lesson for Jake s/Biology d/2030-01-15 h/2",
	WordDeleteLesson: WordDeleteLesson + ": Deletes the lesson identified by the index number " +
		"used in the displayed lesson list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + WordDeleteLesson + " 1",
	WordEditLesson: WordEditLesson + ": Edits the details of the lesson identified by the index " +
		"number used in the displayed lesson list. Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [l/TITLE] [s/SUBJECT] [d/DATE] [h/DURATION_IN_HOURS]\n" +
		"Example: " + WordEditLesson + " 1 d/2030-02-01 h/3",
	WordFindLesson: WordFindLesson + ": Finds all lessons whose title or subject contain any of the " +
		"specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + WordFindLesson + " physics trial",
	WordListLessons: WordListLessons + ": Lists all lessons.",
	WordViewLessonInfo: WordViewLessonInfo + ": Shows the details of the lesson identified by the " +
		"index number used in the displayed lesson list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + WordViewLessonInfo + " 1",
	WordAssign: WordAssign + ": Assigns a student to a lesson, both identified by the index numbers " +
		"used in the displayed lists.\n" +
		"Parameters: s/STUDENT_INDEX l/LESSON_INDEX\n" +
		"Example: " + WordAssign + " s/1 l/2",
	WordUnassign: WordUnassign + ": Removes a student from a lesson, both identified by the index " +
		"numbers used in the displayed lists.\n" +
		"Parameters: s/STUDENT_INDEX l/LESSON_INDEX\n" +
		"Example: " + WordUnassign + " s/1 l/2",
	WordClear: WordClear + ": Clears all students and lessons.",
	WordHelp: WordHelp + ": Shows program usage instructions.\n" +
		"Example: " + WordHelp,
	WordExit: WordExit + ": Exits the program.",
}

// Usage returns the usage string of a command word, or "" if unknown.
func Usage(word string) string {
	return usages[word]
}

// Words returns every known command word in sorted order.
func Words() []string {
	words := make([]string, 0, len(usages))
	for w := range usages {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
