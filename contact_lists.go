package mailtrap

import (
	"context"
	"fmt"
	"net/http"
)

// ContactList is a named group of contacts.
type ContactList struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ContactListParams names a contact list.
type ContactListParams struct {
	Name string `json:"name"`
}

// ContactListsService manages contact lists of the configured account.
type ContactListsService struct {
	service
}

func (s *ContactListsService) path(suffix string) (string, error) {
	return s.accountPath("contact lists", "/contacts/lists"+suffix)
}

// List returns every contact list.
func (s *ContactListsService) List(ctx context.Context) ([]ContactList, error) {
	path, err := s.path("")
	if err != nil {
		return nil, err
	}
	var result []ContactList
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns a contact list.
func (s *ContactListsService) Get(ctx context.Context, listID int64) (*ContactList, error) {
	path, err := s.path(fmt.Sprintf("/%d", listID))
	if err != nil {
		return nil, err
	}
	var result ContactList
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Create adds a contact list.
func (s *ContactListsService) Create(ctx context.Context, params ContactListParams) (*ContactList, error) {
	path, err := s.path("")
	if err != nil {
		return nil, err
	}
	var result ContactList
	if err := s.client.Do(ctx, http.MethodPost, path, nil, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Update renames a contact list.
func (s *ContactListsService) Update(ctx context.Context, listID int64, params ContactListParams) (*ContactList, error) {
	path, err := s.path(fmt.Sprintf("/%d", listID))
	if err != nil {
		return nil, err
	}
	var result ContactList
	if err := s.client.Do(ctx, http.MethodPatch, path, nil, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes a contact list.
func (s *ContactListsService) Delete(ctx context.Context, listID int64) (*DeletedObject, error) {
	path, err := s.path(fmt.Sprintf("/%d", listID))
	if err != nil {
		return nil, err
	}
	if err := s.client.Do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return nil, err
	}
	return deletedID(listID), nil
}
