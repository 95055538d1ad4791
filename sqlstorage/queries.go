package sqlstorage

const (
	createTableSQLite = `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		completed BOOLEAN DEFAULT false
	)
`

	createTablePostgres = `
	CREATE TABLE IF NOT EXISTS tasks (
		id SERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		completed BOOLEAN DEFAULT false
	)
`

	insertTaskQuery = `INSERT INTO tasks (title, completed) VALUES (?, false) RETURNING id`

	getTasksQuery = `
	SELECT id, title, completed
	FROM tasks
	ORDER BY id DESC
`

	getTaskByIdQuery = `
	SELECT id, title, completed
	FROM tasks
	WHERE id = ?
`

	updateTaskQuery = `
	UPDATE tasks
	SET title = ?, completed = ?
	WHERE id = ?
`

	deleteTaskQuery = `DELETE FROM tasks WHERE id = ?`
)
