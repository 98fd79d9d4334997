package schedule

// Employee is one row of the roster snapshot fetched from the backend. The
// snapshot is immutable for the lifetime of the scheduling view.
type Employee struct {
	ID    int    `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// Record is the wire entity posted to the backend, one per selected
// employee. It is derived at submission time and never mutated afterwards.
type Record struct {
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Time    string `json:"time" validate:"required"`
	Comment string `json:"comment" validate:"max=200"`
	Email   string `json:"email" validate:"required,email"`
}
