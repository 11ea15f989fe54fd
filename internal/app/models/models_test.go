package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudent_Defaults(t *testing.T) {
	s := NewStudent("Ada", 20, "CS", []string{"Algorithms"}, nil, "S-1234")

	assert.Equal(t, "Ada", s.GetName())
	assert.Equal(t, 20, s.GetAge())
	assert.Equal(t, "CS", s.Department)
	assert.Equal(t, []string{"Algorithms"}, s.Courses)
	assert.Empty(t, s.Instructors)
	assert.NotNil(t, s.Instructors)
	assert.False(t, s.FeesPaid)
	assert.Zero(t, s.Attendance)
	assert.Equal(t, "S-1234", s.RollNumber)
}

func TestPersonCapability(t *testing.T) {
	people := []Person{
		NewStudent("Ada", 20, "CS", nil, nil, "S-1000"),
		NewInstructor("Grace", 30, "Physics", 5000),
	}

	names := make([]string, 0, len(people))
	for _, p := range people {
		names = append(names, p.GetName())
	}
	assert.Equal(t, []string{"Ada", "Grace"}, names)
}

func TestInstructor_AddCourseKeepsDuplicates(t *testing.T) {
	i := NewInstructor("Grace", 30, "Physics", 5000)
	c := NewCourse("Mechanics", "PH101", nil)

	require.Empty(t, i.Courses)
	i.AddCourse(c)
	i.AddCourse(c)

	assert.Len(t, i.Courses, 2)
	assert.Same(t, c, i.Courses[1])
}

func TestCourse_AddStudent(t *testing.T) {
	c := NewCourse("Algorithms", "CS101", nil)
	s := NewStudent("Ada", 20, "CS", nil, nil, "S-1000")

	assert.Nil(t, c.Instructor)
	c.AddStudent(s)
	c.AddStudent(s)
	assert.Len(t, c.Students, 2)
}

func TestDepartment_SnapshotIsDetached(t *testing.T) {
	d := NewDepartment("CS")
	d.AddCourse(NewCourse("Algorithms", "CS101", nil))

	snap := d.Snapshot()
	d.AddCourse(NewCourse("Compilers", "CS201", nil))
	d.AddInstructor(NewInstructor("Grace", 30, "Physics", 5000))

	assert.Equal(t, []string{"Algorithms"}, snap.CourseNames())
	assert.Empty(t, snap.Instructors)
	assert.Equal(t, []string{"Algorithms", "Compilers"}, d.CourseNames())
}
