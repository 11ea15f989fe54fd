package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/uniregistry/internal/app/services"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
)

// Services are the registry services used to load demo data
type Services struct {
	Departments *services.DepartmentService
	Courses     *services.CourseService
	Instructors services.InstructorService
	Students    *services.StudentService
}

type demoCourse struct {
	name, code string
}

type demoInstructor struct {
	name    string
	age     int
	subject string
	salary  float64
}

type demoStudent struct {
	name       string
	age        int
	subjects   []string
	feesPaid   bool
	attendance float64
}

type demoDepartment struct {
	name        string
	courses     []demoCourse
	instructors []demoInstructor
	students    []demoStudent
}

var demoData = []demoDepartment{
	{
		name: "Computer Engineering",
		courses: []demoCourse{
			{"Algorithms", "CENG201"},
			{"Operating Systems", "CENG301"},
		},
		instructors: []demoInstructor{
			{"Edsger Dijkstra", 52, "Algorithms", 7200},
		},
		students: []demoStudent{
			{"Ada Lovelace", 21, []string{"Algorithms"}, true, 96},
			{"Alan Turing", 22, []string{"Algorithms", "Operating Systems"}, false, 88},
		},
	},
	{
		name: "Electrical Engineering",
		courses: []demoCourse{
			{"Circuit Theory", "EEE101"},
		},
		instructors: []demoInstructor{
			{"Grace Hopper", 45, "Physics", 6800},
		},
		students: []demoStudent{
			{"Hedy Lamarr", 20, []string{"Circuit Theory"}, true, 91},
		},
	},
}

// CreateDefaultData loads a small set of departments, courses, instructors
// and students. An already existing department is left as is and its
// members are not added again.
func CreateDefaultData(ctx context.Context, svc Services, lgr zerolog.Logger) error {
	lgr.Info().Msg("Creating demo registry data...")
	var finalErr error // collect errors without stopping the process

	for _, dept := range demoData {
		if _, err := svc.Departments.CreateDepartment(ctx, dept.name); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateName) {
				lgr.Debug().Str("department", dept.name).Msg("Demo department already present, skipping")
				continue
			}
			lgr.Error().Err(err).Str("department", dept.name).Msg("Error creating demo department")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		for _, c := range dept.courses {
			if _, err := svc.Courses.CreateCourse(ctx, c.name, c.code, dept.name); err != nil {
				lgr.Error().Err(err).Str("course", c.code).Msg("Error creating demo course")
				finalErr = errors.Join(finalErr, err)
			}
		}

		for _, i := range dept.instructors {
			age := i.age
			_, err := svc.Instructors.CreateInstructor(ctx, services.CreateInstructorInput{
				Name:           i.name,
				Age:            &age,
				Subject:        i.subject,
				Salary:         i.salary,
				DepartmentName: dept.name,
			})
			if err != nil {
				lgr.Error().Err(err).Str("instructor", i.name).Msg("Error creating demo instructor")
				finalErr = errors.Join(finalErr, err)
			}
		}

		for _, s := range dept.students {
			_, err := svc.Students.CreateStudent(ctx, services.CreateStudentInput{
				Name:           s.name,
				Age:            s.age,
				DepartmentName: dept.name,
				Subjects:       s.subjects,
				FeesPaid:       s.feesPaid,
				Attendance:     s.attendance,
			})
			if err != nil {
				lgr.Error().Err(err).Str("student", s.name).Msg("Error creating demo student")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Demo registry data ready.")
	}
	return finalErr
}
