package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/dotpip/internal/messages"
)

// Task is one directive with its raw configuration value.
type Task struct {
	Directive string
	Data      any
}

// Config is an ordered list of tasks.
type Config struct {
	Tasks []Task
}

// Validate ensures every task names a directive.
func (c *Config) Validate(source string) error {
	for i, task := range c.Tasks {
		if strings.TrimSpace(task.Directive) == "" {
			return fmt.Errorf(messages.ConfigTaskDirectiveEmptyFmt, source, i)
		}
	}
	return nil
}

// Only returns the tasks whose directive is listed in directives, preserving order.
// An empty list returns every task.
func (c *Config) Only(directives []string) []Task {
	if len(directives) == 0 {
		return c.Tasks
	}
	allowed := make(map[string]struct{}, len(directives))
	for _, d := range directives {
		allowed[d] = struct{}{}
	}
	var tasks []Task
	for _, task := range c.Tasks {
		if _, ok := allowed[task.Directive]; ok {
			tasks = append(tasks, task)
		}
	}
	return tasks
}
