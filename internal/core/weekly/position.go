package weekly

import (
	"math"

	"github.com/example/dayboard/internal/apperr"
	"github.com/example/dayboard/internal/models"
)

// MaxPosition is the largest position a task may hold. It matches a 32-bit
// signed column so boards stay portable to stores with integer positions.
const MaxPosition = math.MaxInt32

// Partition is the grouping key within which task positions are ordered.
type Partition struct {
	UserID        string
	Column        models.Column
	WeekStartDate string
}

// NextPosition returns the position an auto-positioned task receives given
// the partition's current maximum. An empty partition starts at 1. A
// partition whose maximum already sits at MaxPosition has no next slot and
// yields a conflict; the caller must pick an explicit position instead.
func NextPosition(max int, found bool) (int, error) {
	if !found {
		return 1, nil
	}
	if max >= MaxPosition {
		return 0, apperr.Conflict("no position left after %d in this column; choose an explicit position", max)
	}
	return max + 1, nil
}

// Lane is one column of the board with its tasks in display order.
type Lane[T any] struct {
	Column models.Column
	Tasks  []T
}

// GroupByColumn splits a week's flat, position-ordered task list into the
// four board columns. Relative order within each lane is preserved. Tasks
// whose column is not on the board are dropped.
func GroupByColumn[T any](tasks []T, columnOf func(T) models.Column) []Lane[T] {
	columns := models.AllColumns()
	lanes := make([]Lane[T], len(columns))
	index := make(map[models.Column]int, len(columns))
	for i, c := range columns {
		lanes[i] = Lane[T]{Column: c, Tasks: []T{}}
		index[c] = i
	}

	for _, t := range tasks {
		i, ok := index[columnOf(t)]
		if !ok {
			continue
		}
		lanes[i].Tasks = append(lanes[i].Tasks, t)
	}
	return lanes
}
