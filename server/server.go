package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"go_todo_api/config"
	"go_todo_api/model"
	"go_todo_api/services/todolist"
	"go_todo_api/transform"

	"github.com/gorilla/mux"
)

const (
	idParam = "id"

	contentTypeJSON = "application/json; charset=UTF-8"
	contentTypeText = "text/plain; charset=UTF-8"
)

type TodoList interface {
	ListAll(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, title string) (model.Task, error)
	FindByID(ctx context.Context, id int64) (model.Task, error)
	Update(ctx context.Context, id int64, title string, completed bool) error
	Delete(ctx context.Context, id int64) error
}

type Server struct {
	httpServer *http.Server
	router     *mux.Router
	todoList   TodoList
}

func New(cfg *config.Config, todoList TodoList) *Server {
	s := &Server{
		router:   mux.NewRouter(),
		todoList: todoList,
	}

	s.setupHandlers()

	s.httpServer = &http.Server{
		Addr:              cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 1 * time.Second,
	}

	return s
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupHandlers() {
	s.router.Use(logRequests)

	s.router.HandleFunc("/", s.helloHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/json/jackson", s.helloJSONHandler).Methods(http.MethodGet)

	s.router.HandleFunc("/api/tasks", s.getTasksHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/api/tasks", s.addTaskHandler).Methods(http.MethodPost)
	s.router.HandleFunc("/api/tasks", s.updateTaskHandler).Methods(http.MethodPatch)
	s.router.HandleFunc("/api/tasks", s.deleteTaskHandler).Methods(http.MethodDelete)
	s.router.HandleFunc("/api/tasks/{id}", s.getTaskByIdHandler).Methods(http.MethodGet)
}

func (s *Server) helloHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", contentTypeText)

	w.Write([]byte("HELLO WORLD!"))
}

func (s *Server) helloJSONHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"hello": "world"})
}

func (s *Server) getTasksHandler(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.todoList.ListAll(r.Context())
	if err != nil {
		fail(w, http.StatusInternalServerError)
		log.Println("ListAll:", err)

		return
	}

	writeJSON(w, http.StatusOK, model.ResponseTasks{Data: transform.TasksToDto(tasks)})
}

func (s *Server) addTaskHandler(w http.ResponseWriter, r *http.Request) {
	incomingTask, ok := decodeTask(w, r)
	if !ok {
		return
	}

	title, err := transform.NewTitle(incomingTask)
	if err != nil {
		fail(w, http.StatusBadRequest)
		log.Println("NewTitle:", err)

		return
	}

	if _, err := s.todoList.Create(r.Context(), title); err != nil {
		fail(w, http.StatusInternalServerError)
		log.Println("Create:", err)

		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) getTaskByIdHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)[idParam], 10, 64)
	if err != nil {
		fail(w, http.StatusBadRequest)
		log.Println("ParseInt:", err)

		return
	}

	task, err := s.todoList.FindByID(r.Context(), id)
	if errors.Is(err, todolist.ErrNotFound) {
		fail(w, http.StatusNotFound)

		return
	}
	if err != nil {
		fail(w, http.StatusInternalServerError)
		log.Println("FindByID:", err)

		return
	}

	writeJSON(w, http.StatusOK, transform.TaskToDto(task))
}

func (s *Server) updateTaskHandler(w http.ResponseWriter, r *http.Request) {
	incomingTask, ok := decodeTask(w, r)
	if !ok {
		return
	}

	task, err := transform.DtoToTask(incomingTask)
	if err != nil {
		fail(w, http.StatusBadRequest)
		log.Println("DtoToTask:", err)

		return
	}

	err = s.todoList.Update(r.Context(), task.ID, task.Title, task.Completed)
	if err != nil {
		fail(w, http.StatusInternalServerError)
		log.Println("Update:", err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	incomingTask, ok := decodeTask(w, r)
	if !ok {
		return
	}

	id, err := transform.DtoToID(incomingTask)
	if err != nil {
		fail(w, http.StatusBadRequest)
		log.Println("DtoToID:", err)

		return
	}

	err = s.todoList.Delete(r.Context(), id)
	if err != nil {
		fail(w, http.StatusInternalServerError)
		log.Println("Delete:", err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeTask(w http.ResponseWriter, r *http.Request) (model.TaskDTO, bool) {
	var incomingTask model.TaskDTO

	if err := json.NewDecoder(r.Body).Decode(&incomingTask); err != nil {
		fail(w, http.StatusBadRequest)
		log.Println("json Decoder:", err)

		return model.TaskDTO{}, false
	}

	return incomingTask, true
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	responseBody, err := json.Marshal(payload)
	if err != nil {
		fail(w, http.StatusInternalServerError)
		log.Println("json Marshal:", err)

		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(code)
	w.Write(responseBody)
}

// fail answers with a bare status code; error details only go to the log.
func fail(w http.ResponseWriter, code int) {
	w.WriteHeader(code)
}
