package photos

import (
	"journal/internal/domains/photo/model/dto"
	gDto "journal/shared/dto"
	"slices"
)

const StatusError = "error"

type (
	Photo = dto.PhotoResponse
	Pager = gDto.Pager
)

// Error is what the view shows after a failed request.
type Error struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type State struct {
	Items     []Photo
	Pager     *Pager
	IsLoading bool
	Detail    *Photo
	Error     *Error
}

func InitialState() State {
	return State{Items: []Photo{}, IsLoading: true}
}

type Action interface {
	action()
}

type (
	ListRequested struct{}
	ListSucceeded struct {
		Items []Photo
		Pager Pager
	}
	ListFailed      struct{ Error Error }
	DetailSucceeded struct{ Photo Photo }
	CreateSucceeded struct{ Photo Photo }
	CreateFailed    struct{ Error Error }
	EditSucceeded   struct{ Photo Photo }
	DeleteSucceeded struct{ ID int64 }
)

func (ListRequested) action()   {}
func (ListSucceeded) action()   {}
func (ListFailed) action()      {}
func (DetailSucceeded) action() {}
func (CreateSucceeded) action() {}
func (CreateFailed) action()    {}
func (EditSucceeded) action()   {}
func (DeleteSucceeded) action() {}

// Reduce returns the next state. Items of the previous state are never written to;
// every change to the list produces a new slice.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case ListRequested:
		state.IsLoading = true
	case ListSucceeded:
		pager := a.Pager
		state.Items = slices.Clone(a.Items)
		state.Pager = &pager
		state.IsLoading = false
	case ListFailed:
		failed := a.Error
		failed.Status = StatusError
		state.Error = &failed
		state.IsLoading = false
	case DetailSucceeded:
		detail := a.Photo
		state.Detail = &detail
	case CreateSucceeded:
		state.Items = append([]Photo{a.Photo}, state.Items...)
		state.Error = nil
	case CreateFailed:
		failed := a.Error
		failed.Status = StatusError
		state.Error = &failed
	case EditSucceeded:
		idx := indexOf(state.Items, a.Photo.ID)
		if idx < 0 {
			return state
		}

		items := slices.Clone(state.Items)
		items[idx] = a.Photo
		state.Items = items
	case DeleteSucceeded:
		idx := indexOf(state.Items, a.ID)
		if idx < 0 {
			return state
		}

		state.Items = slices.Delete(slices.Clone(state.Items), idx, idx+1)
	}

	return state
}

func indexOf(items []Photo, id int64) int {
	return slices.IndexFunc(items, func(p Photo) bool { return p.ID == id })
}
