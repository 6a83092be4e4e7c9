package models

// CourseForm carries the nine fields of a course submission. All fields are
// mandatory; the empty-string check happens in the catalog service, not at
// binding time, so a partial form still reaches validation intact.
type CourseForm struct {
	Code          string `form:"code"`
	Name          string `form:"name"`
	Instructor    string `form:"instructor"`
	Semester      string `form:"semester"`
	Schedule      string `form:"schedule"`
	Classroom     string `form:"classroom"`
	Prerequisites string `form:"prerequisites"`
	Grading       string `form:"grading"`
	Description   string `form:"description"`
}

// MissingFields returns the names of fields that are empty strings.
// Whitespace-only values count as present.
func (f CourseForm) MissingFields() []string {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"code", f.Code},
		{"name", f.Name},
		{"instructor", f.Instructor},
		{"semester", f.Semester},
		{"schedule", f.Schedule},
		{"classroom", f.Classroom},
		{"prerequisites", f.Prerequisites},
		{"grading", f.Grading},
		{"description", f.Description},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

// ToCourse converts the form into a Course record.
func (f CourseForm) ToCourse() Course {
	return Course{
		Code:          f.Code,
		Name:          f.Name,
		Instructor:    f.Instructor,
		Semester:      f.Semester,
		Schedule:      f.Schedule,
		Classroom:     f.Classroom,
		Prerequisites: f.Prerequisites,
		Grading:       f.Grading,
		Description:   f.Description,
	}
}
