package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRoomName  = Error("room name is empty")
	ErrInvalidStroke    = Error("invalid stroke data")
	ErrInvalidThumbnail = Error("thumbnail is empty")
	ErrRoomNotFound     = Error("room not found")
	ErrNoActiveRoom     = Error("no active room for this session")
)
