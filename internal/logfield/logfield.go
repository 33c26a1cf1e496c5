package lf

import "go.uber.org/zap"

const (
	FieldUsername  = "username"
	FieldStudentID = "student_id"
	FieldPage      = "page"
	FieldLevel     = "level"
	FieldRequestID = "request_id"
	FieldStatus    = "status"
)

func Username(username string) zap.Field {
	return zap.String(FieldUsername, username)
}

func StudentID(ID int64) zap.Field {
	return zap.Int64(FieldStudentID, ID)
}

func Page(page int) zap.Field {
	return zap.Int(FieldPage, page)
}

func Level(level string) zap.Field {
	return zap.String(FieldLevel, level)
}

func RequestID(ID string) zap.Field {
	return zap.String(FieldRequestID, ID)
}

func Status(status int) zap.Field {
	return zap.Int(FieldStatus, status)
}
