package photos

import (
	"context"
	"errors"
	"sync"
)

// ErrStale is returned for a list response that was overtaken by a newer LoadPage call.
var ErrStale = errors.New("stale list response discarded")

// Store owns the view state. Each LoadPage cancels the previous in-flight list request
// and only the response carrying the latest sequence number is applied.
type Store struct {
	client Client

	mu     sync.Mutex
	state  State
	seq    uint64
	cancel context.CancelFunc
}

func NewStore(client Client) *Store {
	return &Store{
		client: client,
		state:  InitialState(),
	}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, action)

	return s.state
}

func (s *Store) LoadPage(ctx context.Context, page int) error {
	ctx, seq := s.begin(ctx)

	res, err := s.client.List(ctx, page)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return ErrStale
	}

	s.cancel()
	s.cancel = nil

	if err != nil {
		s.state = Reduce(s.state, ListFailed{Error: toError(err)})

		return err
	}

	s.state = Reduce(s.state, ListSucceeded{Items: res.Items, Pager: res.Pager})

	return nil
}

func (s *Store) begin(ctx context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.seq++
	s.state = Reduce(s.state, ListRequested{})

	return ctx, s.seq
}

func (s *Store) LoadDetail(ctx context.Context, id int64) error {
	photo, err := s.client.Get(ctx, id)
	if err != nil {
		return err
	}

	s.Dispatch(DetailSucceeded{Photo: photo})

	return nil
}

func (s *Store) Create(ctx context.Context, upload Upload) error {
	photo, err := s.client.Create(ctx, upload)
	if err != nil {
		s.Dispatch(CreateFailed{Error: toError(err)})

		return err
	}

	s.Dispatch(CreateSucceeded{Photo: photo})

	return nil
}

func (s *Store) Edit(ctx context.Context, id int64, upload Upload) error {
	photo, err := s.client.Update(ctx, id, upload)
	if err != nil {
		return err
	}

	s.Dispatch(EditSucceeded{Photo: photo})

	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, id); err != nil {
		return err
	}

	s.Dispatch(DeleteSucceeded{ID: id})

	return nil
}

func toError(err error) Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return *apiErr
	}

	return Error{Status: StatusError, Message: err.Error()}
}
