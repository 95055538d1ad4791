package model

type Task struct {
	ID        int64  `db:"id"`
	Title     string `db:"title"`
	Completed bool   `db:"completed"`
}

// TaskDTO is the wire shape. ID and Title are pointers so that an absent or
// null field can be told apart from a zero value.
type TaskDTO struct {
	ID        *int64  `json:"id"`
	Title     *string `json:"title"`
	Completed bool    `json:"completed"`
}

type ResponseTasks struct {
	Data []TaskDTO `json:"data"`
}
