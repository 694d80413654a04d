package domain

// Student is a roster entry for a course student.
type Student struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	LastName string `json:"last_name"`
	Team     string `json:"team"`
	Section  string `json:"section"`
}

// Instructor is a roster entry for a course instructor. Instructors carry no
// team or section membership; they are collapsed into the synthetic
// InstructorsTeam by the roster index.
type Instructor struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

// Roster enumerates the participants of a course. An identifier resolves to
// at most one of the two variants.
type Roster struct {
	students    []Student
	instructors []Instructor

	studentByEmail    map[string]int
	instructorByEmail map[string]int
}

// NewRoster builds a roster with identifier lookup maps. Input slices are
// copied; later mutation of the arguments does not affect the roster.
func NewRoster(students []Student, instructors []Instructor) *Roster {
	r := &Roster{
		students:          make([]Student, len(students)),
		instructors:       make([]Instructor, len(instructors)),
		studentByEmail:    make(map[string]int, len(students)),
		instructorByEmail: make(map[string]int, len(instructors)),
	}
	copy(r.students, students)
	copy(r.instructors, instructors)
	for i, s := range r.students {
		r.studentByEmail[s.Email] = i
	}
	for i, ins := range r.instructors {
		r.instructorByEmail[ins.Email] = i
	}
	return r
}

// Students returns a copy of the student list.
func (r *Roster) Students() []Student {
	out := make([]Student, len(r.students))
	copy(out, r.students)
	return out
}

// Instructors returns a copy of the instructor list.
func (r *Roster) Instructors() []Instructor {
	out := make([]Instructor, len(r.instructors))
	copy(out, r.instructors)
	return out
}

// StudentByEmail resolves a student roster entry by identifier.
func (r *Roster) StudentByEmail(email string) (Student, bool) {
	i, ok := r.studentByEmail[email]
	if !ok {
		return Student{}, false
	}
	return r.students[i], true
}

// InstructorByEmail resolves an instructor roster entry by identifier.
func (r *Roster) InstructorByEmail(email string) (Instructor, bool) {
	i, ok := r.instructorByEmail[email]
	if !ok {
		return Instructor{}, false
	}
	return r.instructors[i], true
}

// IsStudent reports whether the identifier belongs to a student.
func (r *Roster) IsStudent(id string) bool {
	_, ok := r.studentByEmail[id]
	return ok
}

// IsInstructor reports whether the identifier belongs to an instructor.
func (r *Roster) IsInstructor(id string) bool {
	_, ok := r.instructorByEmail[id]
	return ok
}
