package apierrors

const (
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgInvalidPriority     = "invalidPriority"
	MsgInvalidColumn       = "invalidColumn"
	MsgInvalidOrderPayload = "invalidOrderPayload"
	MsgFilteredReorder     = "filteredReorder"
	MsgTaskNotFound        = "taskNotFound"
	MsgFailCreateTask      = "failCreateTask"
	MsgFailUpdateTask      = "failUpdateTask"
	MsgFailDeleteTask      = "failDeleteTask"
	MsgFailMoveTask        = "failMoveTask"
	MsgFailReorderBoard    = "failReorderBoard"
	MsgFailResetBoard      = "failResetBoard"
)
