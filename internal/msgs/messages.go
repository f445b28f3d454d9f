package msgs

const (
	MsgOperationFailed     = "Operation failed"
	MsgOperationSuccessful = "Operation successful"
)
