package api

// Level is the student's class year as the remote API spells it.
type Level = string

const (
	LevelFreshman  Level = "FRESHMAN"
	LevelSophomore Level = "SOPHOMORE"
	LevelJunior    Level = "JUNIOR"
	LevelSenior    Level = "SENIOR"
)

// Levels lists every class year in display order.
var Levels = []Level{LevelFreshman, LevelSophomore, LevelJunior, LevelSenior}

// Student ID is a pointer: records are created without one and the remote API
// assigns it on persist.
type Student struct {
	ID       *int64 `json:"id,omitempty"`
	Username string `json:"username"`
	Level    Level  `json:"level"`
}

// PageResponse mirrors the remote API's page bundle. Number is the 0-based
// page index.
type PageResponse struct {
	Content       []Student `json:"content"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	Size          int       `json:"size"`
	Number        int       `json:"number"`
}
