package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

// ClassroomDescriptorDTO is the classroom header shown to students alongside
// the roster and the question list.
type ClassroomDescriptorDTO struct {
	ID          uint   `json:"id"`
	SchoolName  string `json:"school_name"`
	Grade       int    `json:"grade"`
	ClassNumber int    `json:"class_number"`
	TeacherName string `json:"teacher_name"`
}

type StudentDTO struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	PhotoURL      *string `json:"photo_url,omitempty"`
	StudentNumber *int    `json:"student_number,omitempty"`
}
