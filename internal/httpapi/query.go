package httpapi

import (
	"errors"
	"net/url"
	"strings"

	"todolist/internal/model"
)

// parseListFilter reads ?completed=. Without it the listing is incomplete tasks.
func parseListFilter(q url.Values) (model.TaskFilter, error) {
	v := q.Get("completed")
	if v == "" {
		return model.Incomplete(), nil
	}

	completed, err := parseBoolStrict(v)
	if err != nil {
		return model.TaskFilter{}, errors.New("completed must be true or false")
	}
	return model.TaskFilter{Completed: &completed}, nil
}

func parseBoolStrict(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errors.New("not a bool")
	}
}
