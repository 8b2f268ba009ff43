package strategy

// Signal is the verdict of a signal evaluator: whether the condition
// triggered and, if so, a human-readable reason for the notification.
type Signal struct {
	Triggered bool
	Reason    string
}
