package service

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// TaskInput is the payload for creating a task. Priority and DueDate are raw
// client strings; empty means default/none.
type TaskInput struct {
	Title       string
	Description *string
	Category    *string
	Priority    string
	DueDate     string
}

// CategoryInput is the payload for creating a category. Empty Color means default.
type CategoryInput struct {
	Name  string
	Color string
}
