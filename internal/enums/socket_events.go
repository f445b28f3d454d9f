package enums

const (
	SOCKET_EVENT_JOIN_ROOM        = "join_room"
	SOCKET_EVENT_DRAW             = "draw"
	SOCKET_EVENT_CLEAR_CANVAS     = "clear_canvas"
	SOCKET_EVENT_UPDATE_THUMBNAIL = "update_thumbnail"
	SOCKET_EVENT_LEAVE_ROOM       = "leave_room"
	SOCKET_EVENT_LOAD_HISTORY     = "load_history"
	SOCKET_EVENT_UPDATE_ROOM_LIST = "update_room_list"
)
