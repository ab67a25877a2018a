package errors

import "fmt"

var (
	ErrRoomNotFound    = fmt.Errorf("room does not exist")
	ErrNameTaken       = fmt.Errorf("name is currently taken")
	ErrInvalidIdentity = fmt.Errorf("missing or invalid session identity")
	ErrWorkerPanic     = fmt.Errorf("worker panic")
)
