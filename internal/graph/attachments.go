package graph

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
)

// fileAttachmentType is the OData type of downloadable file attachments.
const fileAttachmentType = "#microsoft.graph.fileAttachment"

// ErrNotFileAttachment indicates the attachment carries no downloadable
// content (e.g. an item or reference attachment).
var ErrNotFileAttachment = errors.New("graph: not a file attachment")

// Attachment represents a message attachment from Microsoft Graph.
type Attachment struct {
	ODataType    string `json:"@odata.type"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContentType  string `json:"contentType"`
	Size         int64  `json:"size"`
	IsInline     bool   `json:"isInline"`
	ContentBytes string `json:"contentBytes,omitempty"`
}

// attachmentsResponse is one page of an attachment listing.
type attachmentsResponse struct {
	Value    []Attachment `json:"value"`
	NextLink string       `json:"@odata.nextLink"`
}

// ListAttachments fetches all attachments of a message, following
// @odata.nextLink continuation.
func (c *Client) ListAttachments(ctx context.Context, messageID string) ([]Attachment, error) {
	next := fmt.Sprintf("%s/me/messages/%s/attachments", c.baseURL, url.PathEscape(messageID))

	var attachments []Attachment
	for next != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var page attachmentsResponse
		if err := c.getJSON(ctx, next, &page); err != nil {
			return nil, fmt.Errorf("list attachments: %w", err)
		}

		attachments = append(attachments, page.Value...)
		next = page.NextLink
	}

	return attachments, nil
}

// GetAttachment fetches a single attachment including its content.
func (c *Client) GetAttachment(ctx context.Context, messageID, attachmentID string) (*Attachment, error) {
	u := fmt.Sprintf("%s/me/messages/%s/attachments/%s",
		c.baseURL, url.PathEscape(messageID), url.PathEscape(attachmentID))

	var attachment Attachment
	if err := c.getJSON(ctx, u, &attachment); err != nil {
		return nil, fmt.Errorf("get attachment: %w", err)
	}

	return &attachment, nil
}

// Content decodes the attachment's binary content. Only file attachments
// carry content; other attachment types fail with ErrNotFileAttachment.
func (a *Attachment) Content() ([]byte, error) {
	if a.ODataType != fileAttachmentType || a.ContentBytes == "" {
		return nil, fmt.Errorf("%w: %s (%s)", ErrNotFileAttachment, a.Name, a.ODataType)
	}

	data, err := base64.StdEncoding.DecodeString(a.ContentBytes)
	if err != nil {
		return nil, fmt.Errorf("decode attachment content: %w", err)
	}

	return data, nil
}
