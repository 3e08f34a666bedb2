package graph

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Message represents an Outlook message from Microsoft Graph API.
type Message struct {
	ID               string        `json:"id"`
	Subject          string        `json:"subject"`
	BodyPreview      string        `json:"bodyPreview"`
	Body             *MessageBody  `json:"body"`
	From             *EmailAddress `json:"from"`
	ToRecipients     []Recipient   `json:"toRecipients"`
	ReceivedDateTime string        `json:"receivedDateTime"`
	IsRead           bool          `json:"isRead"`
	ConversationID   string        `json:"conversationId"`
	ParentFolderID   string        `json:"parentFolderId"`
	WebLink          string        `json:"webLink"`
	HasAttachments   bool          `json:"hasAttachments"`
}

// MessageBody represents the body of an email.
type MessageBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// EmailAddress represents an email address with optional name.
type EmailAddress struct {
	EmailAddress struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	} `json:"emailAddress"`
}

// Recipient represents an email recipient.
type Recipient struct {
	EmailAddress struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	} `json:"emailAddress"`
}

// messagesResponse is one page of a message listing.
type messagesResponse struct {
	Value    []Message `json:"value"`
	NextLink string    `json:"@odata.nextLink"`
}

// ListOptions controls a message listing.
type ListOptions struct {
	// Top is the page size (default 100, Graph max 1000).
	Top int
	// Filter is an optional OData $filter expression.
	Filter string
	// Select limits the returned fields.
	Select []string
}

// defaultSelect are the message fields fetched when none are configured.
var defaultSelect = []string{
	"id", "subject", "bodyPreview", "body", "from", "toRecipients",
	"receivedDateTime", "isRead", "conversationId", "parentFolderId",
	"webLink", "hasAttachments",
}

// ListMessages fetches all messages in a folder, following @odata.nextLink
// continuation until the listing is exhausted. Bounded only by the remote
// service's continuation protocol.
func (c *Client) ListMessages(ctx context.Context, folderID string, opts ListOptions) ([]Message, error) {
	next := c.buildMessagesURL(folderID, opts)

	var messages []Message
	for next != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var page messagesResponse
		if err := c.getJSON(ctx, next, &page); err != nil {
			return nil, fmt.Errorf("list messages: %w", err)
		}

		messages = append(messages, page.Value...)
		next = page.NextLink
	}

	return messages, nil
}

// buildMessagesURL constructs the first-page URL for a message listing.
func (c *Client) buildMessagesURL(folderID string, opts ListOptions) string {
	if folderID == "" {
		folderID = "inbox"
	}

	top := opts.Top
	if top <= 0 {
		top = 100
	}
	// Microsoft Graph max is 1000
	if top > 1000 {
		top = 1000
	}

	fields := opts.Select
	if len(fields) == 0 {
		fields = defaultSelect
	}

	q := url.Values{}
	q.Set("$select", strings.Join(fields, ","))
	q.Set("$top", strconv.Itoa(top))
	if opts.Filter != "" {
		q.Set("$filter", opts.Filter)
	}

	return fmt.Sprintf("%s/me/mailFolders/%s/messages?%s", c.baseURL, url.PathEscape(folderID), q.Encode())
}
