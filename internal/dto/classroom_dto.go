package dto

import "time"

// StudentInputDTO is one roster entry in a classroom save. ID is set for
// students that already exist; entries without an ID are inserted.
type StudentInputDTO struct {
	ID            *uint   `json:"id"`
	Name          string  `json:"name" binding:"required"`
	PhotoURL      *string `json:"photo_url"`
	StudentNumber *int    `json:"student_number"`
}

type ClassroomCreateDTO struct {
	UserID      string            `json:"user_id" binding:"required"`
	SchoolName  string            `json:"school_name" binding:"required"`
	Grade       int               `json:"grade" binding:"required,min=1"`
	ClassNumber int               `json:"class_number" binding:"required,min=1"`
	TeacherName string            `json:"teacher_name"`
	Students    []StudentInputDTO `json:"students" binding:"omitempty,dive"`
}

// ClassroomUpdateDTO carries the full desired roster; the service diffs it
// against the stored one.
type ClassroomUpdateDTO struct {
	SchoolName  string            `json:"school_name" binding:"required"`
	Grade       int               `json:"grade" binding:"required,min=1"`
	ClassNumber int               `json:"class_number" binding:"required,min=1"`
	TeacherName string            `json:"teacher_name"`
	Students    []StudentInputDTO `json:"students" binding:"omitempty,dive"`
}

type ClassroomResponseDTO struct {
	ID          uint         `json:"id"`
	UserID      string       `json:"user_id"`
	SchoolName  string       `json:"school_name"`
	Grade       int          `json:"grade"`
	ClassNumber int          `json:"class_number"`
	TeacherName string       `json:"teacher_name"`
	Students    []StudentDTO `json:"students"`
	CreatedAt   time.Time    `json:"created_at"`
}
