package crate

import (
	"context"
	"encoding/json"
	"fmt"
)

// ExportRequest configures a backup export.
type ExportRequest struct {
	IncludeCredentials bool   `json:"includeCredentials"`
	Password           string `json:"password,omitempty"`
}

// ImportRequest configures a backup import. Payload is the opaque backup blob
// produced by a previous export; the client never interprets it.
type ImportRequest struct {
	Mode     BackupMode      `json:"mode"`
	Password string          `json:"password,omitempty"`
	Payload  json.RawMessage `json:"payload"`
}

// ExportBackup asks the server for a backup blob. When credentials are
// included the server encrypts the blob with the supplied password.
func (c *Client) ExportBackup(ctx context.Context, req ExportRequest) (json.RawMessage, error) {
	if req.IncludeCredentials && len(req.Password) < 8 {
		return nil, fmt.Errorf("password of at least 8 characters required to export credentials")
	}
	var payload json.RawMessage
	_, err := c.do(ctx, "POST", apiPrefix+"/backup/export", requestOptions{timeout: slowTimeout, body: req}, &payload)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// ImportBackup uploads a backup blob for the server to apply.
func (c *Client) ImportBackup(ctx context.Context, req ImportRequest) error {
	if len(req.Payload) == 0 {
		return fmt.Errorf("backup payload required")
	}
	switch req.Mode {
	case BackupMerge, BackupReplace:
	default:
		return fmt.Errorf("backup mode must be merge or replace")
	}
	_, err := c.do(ctx, "POST", apiPrefix+"/backup/import", requestOptions{timeout: verySlowTimeout, body: req}, nil)
	return err
}
