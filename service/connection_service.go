package service

import (
	"context"
	"fmt"
	"time"

	"collab-api/models"
)

// ConnectionService drives the connection request state machine:
// none -> pending -> accepted | rejected. A pending request is a
// document in the requests collection; an accepted connection is the
// reciprocal pair of entries in both users' connection sets, and the
// request document is removed on either outcome.
type ConnectionService struct {
	users    UserStore
	requests ConnectionRequestStore
	notifier *Notifier
}

func NewConnectionService(users UserStore, requests ConnectionRequestStore, notifier *Notifier) *ConnectionService {
	return &ConnectionService{users: users, requests: requests, notifier: notifier}
}

func (s *ConnectionService) SendRequest(ctx context.Context, fromID, toID string) (models.ConnectionRequest, error) {
	if toID == "" {
		return models.ConnectionRequest{}, fmt.Errorf("%w: target user id is required", ErrValidation)
	}
	if fromID == toID {
		return models.ConnectionRequest{}, fmt.Errorf("%w: cannot send a connection request to yourself", ErrValidation)
	}

	from, found, err := s.users.GetByID(ctx, fromID)
	if err != nil {
		return models.ConnectionRequest{}, err
	}
	if !found {
		return models.ConnectionRequest{}, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	_, found, err = s.users.GetByID(ctx, toID)
	if err != nil {
		return models.ConnectionRequest{}, err
	}
	if !found {
		return models.ConnectionRequest{}, fmt.Errorf("%w: target user not found", ErrNotFound)
	}

	for _, id := range from.Connections {
		if id == toID {
			return models.ConnectionRequest{}, fmt.Errorf("%w: users are already connected", ErrConflict)
		}
	}

	_, pending, err := s.requests.PendingBetween(ctx, fromID, toID)
	if err != nil {
		return models.ConnectionRequest{}, err
	}
	if pending {
		return models.ConnectionRequest{}, fmt.Errorf("%w: a pending request already exists between these users", ErrConflict)
	}

	req := models.ConnectionRequest{
		From:      fromID,
		To:        toID,
		Status:    models.ConnectionPending,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.requests.Insert(ctx, req)
	if err != nil {
		return models.ConnectionRequest{}, err
	}

	created, _, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return models.ConnectionRequest{}, err
	}

	message := fmt.Sprintf("%s %s sent you a connection request", from.FirstName, from.Surname)
	if err := s.notifier.Notify(toID, models.NotificationConnectionRequest, message); err != nil {
		return models.ConnectionRequest{}, err
	}

	return created, nil
}

func (s *ConnectionService) Respond(ctx context.Context, actorID, requestID, action string) error {
	if action != "accept" && action != "reject" {
		return fmt.Errorf("%w: action must be accept or reject", ErrValidation)
	}

	req, found, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: connection request not found", ErrNotFound)
	}
	if req.To != actorID {
		return fmt.Errorf("%w: only the request target may respond", ErrForbidden)
	}
	if req.Status != models.ConnectionPending {
		return fmt.Errorf("%w: request is not pending", ErrConflict)
	}

	actor, found, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: user not found", ErrNotFound)
	}

	if action == "accept" {
		if err := s.users.AddConnection(ctx, req.From, req.To); err != nil {
			return err
		}
		if err := s.users.AddConnection(ctx, req.To, req.From); err != nil {
			return err
		}
		if err := s.requests.Delete(ctx, req.ID.Hex()); err != nil {
			return err
		}
		message := fmt.Sprintf("%s %s accepted your connection request", actor.FirstName, actor.Surname)
		return s.notifier.Notify(req.From, models.NotificationConnectionAccepted, message)
	}

	if err := s.requests.Delete(ctx, req.ID.Hex()); err != nil {
		return err
	}
	message := fmt.Sprintf("%s %s rejected your connection request", actor.FirstName, actor.Surname)
	return s.notifier.Notify(req.From, models.NotificationConnectionRejected, message)
}

func (s *ConnectionService) ListConnections(ctx context.Context, userID string) ([]models.User, error) {
	user, found, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	connections := []models.User{}
	for _, id := range user.Connections {
		other, found, err := s.users.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if found {
			connections = append(connections, other)
		}
	}
	return connections, nil
}

func (s *ConnectionService) ListPending(ctx context.Context, userID string) ([]models.ConnectionRequest, error) {
	return s.requests.ListPendingFor(ctx, userID)
}

func (s *ConnectionService) RemoveConnection(ctx context.Context, actorID, otherID string) error {
	actor, found, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: user not found", ErrNotFound)
	}

	connected := false
	for _, id := range actor.Connections {
		if id == otherID {
			connected = true
			break
		}
	}
	if !connected {
		return fmt.Errorf("%w: connection not found", ErrNotFound)
	}

	if err := s.users.RemoveConnection(ctx, actorID, otherID); err != nil {
		return err
	}
	return s.users.RemoveConnection(ctx, otherID, actorID)
}
