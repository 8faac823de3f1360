package apierrors

const (
	MsgEmailExists          = "emailAlreadyExists"
	MsgUserNotFound         = "userNotFound"
	MsgIncorrectPassword    = "incorrectPassword"
	MsgSignupFailed         = "signupFailed"
	MsgLoginFailed          = "loginFailed"
	MsgInvalidSignupPayload = "invalidSignupPayload"
	MsgInvalidLoginPayload  = "invalidLoginPayload"

	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgTaskNotFound       = "taskNotFound"
	MsgTaskForbidden      = "taskForbidden"
	MsgUnauthorized       = "unauthorized"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailListTasks      = "failListTasks"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
)
