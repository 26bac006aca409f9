package mailtrap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mailtrap/mailtrap-go/internal/api"
)

// service is embedded by services scoped to the configured account.
type service struct {
	client    *api.Client
	accountID int64
}

// accountPath prefixes suffix with /api/accounts/{id}. It fails before any
// I/O when no account ID was configured.
func (s service) accountPath(name, suffix string) (string, error) {
	if s.accountID == 0 {
		return "", &ConfigurationError{Message: "account ID is required for " + name}
	}
	return accountPath(s.accountID, suffix), nil
}

func accountPath(accountID int64, suffix string) string {
	return fmt.Sprintf("/api/accounts/%d%s", accountID, suffix)
}

// DeletedObject confirms a delete operation. ID is the identifier that was
// deleted, rendered as a string whether the server sent a number or a
// string.
type DeletedObject struct {
	ID string `json:"id"`
}

// UnmarshalJSON accepts a numeric or string id.
func (d *DeletedObject) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	id := bytes.TrimSpace(raw.ID)
	switch {
	case len(id) == 0 || string(id) == "null":
		d.ID = ""
	case id[0] == '"':
		return json.Unmarshal(id, &d.ID)
	default:
		d.ID = string(id)
	}
	return nil
}

func deletedID(id int64) *DeletedObject {
	return &DeletedObject{ID: strconv.FormatInt(id, 10)}
}
