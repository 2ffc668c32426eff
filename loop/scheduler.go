package loop

// Task is a per-frame callback that is either scheduled or not. A stopped
// task is kept by its Scheduler, so starting it again is cheap.
type Task struct {
	name      string
	fn        func()
	scheduled bool
}

func (t *Task) Name() string { return t.name }

// Start schedules the task. It reports false when it was already scheduled.
func (t *Task) Start() bool {
	if t == nil || t.scheduled {
		return false
	}
	t.scheduled = true
	return true
}

// Stop unschedules the task. It reports false when it was not scheduled.
func (t *Task) Stop() bool {
	if t == nil || !t.scheduled {
		return false
	}
	t.scheduled = false
	return true
}

func (t *Task) Scheduled() bool {
	return t != nil && t.scheduled
}

// Scheduler runs every scheduled task once per Tick, in registration order.
type Scheduler struct {
	tasks []*Task
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers fn under name. The returned task starts out stopped.
func (s *Scheduler) Add(name string, fn func()) *Task {
	if fn == nil {
		return nil
	}
	t := &Task{name: name, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Tick runs the scheduled tasks. A task stopped by an earlier task in the
// same tick does not run.
func (s *Scheduler) Tick() {
	for _, t := range s.tasks {
		if t.scheduled {
			t.fn()
		}
	}
}

// Scheduled returns the names of the currently scheduled tasks.
func (s *Scheduler) Scheduled() []string {
	names := make([]string, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.scheduled {
			names = append(names, t.name)
		}
	}
	return names
}

func (s *Scheduler) Tasks() []*Task {
	tasks := make([]*Task, 0, len(s.tasks))
	return append(tasks, s.tasks...)
}
