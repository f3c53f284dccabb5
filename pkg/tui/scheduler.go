package tui

import tea "github.com/charmbracelet/bubbletea"

// runMsg carries a scheduled task into the program's update loop.
type runMsg func()

// Scheduler runs tasks on the bubbletea update goroutine, which owns every
// pagination shown by the preview.
type Scheduler struct {
	tasks chan func()
}

func NewScheduler(capacity int) *Scheduler {
	return &Scheduler{tasks: make(chan func(), capacity)}
}

// Execute queues fn. It blocks while the queue is full.
func (s *Scheduler) Execute(fn func()) {
	s.tasks <- fn
}

// listen waits for the next task. The model re-issues it after each task.
func (s *Scheduler) listen() tea.Cmd {
	return func() tea.Msg {
		return runMsg(<-s.tasks)
	}
}
