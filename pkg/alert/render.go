package alert

import (
	"fmt"
	"html"
	"strings"

	"github.com/slack-go/slack"
)

// Slack attachment colours per priority.
var priorityColours = map[string]string{
	"critical": "danger",
	"high":     "warning",
	"medium":   "#439FE0",
	"low":      "good",
}

func priorityColour(priority string) string {
	if colour, ok := priorityColours[priority]; ok {
		return colour
	}
	return priorityColours["medium"]
}

// renderSlackMessage builds the webhook payload: one attachment per
// batch with a field per item.
func renderSlackMessage(batch Batch) *slack.WebhookMessage {
	fields := make([]slack.AttachmentField, 0, len(batch.Items))
	for _, item := range batch.Items {
		value := item.Summary
		if item.URL != "" {
			value = fmt.Sprintf("%s\n<%s|View on Reddit>", value, item.URL)
		}
		fields = append(fields, slack.AttachmentField{
			Title: item.Title,
			Value: value,
		})
	}

	attachment := slack.Attachment{
		Color:  priorityColour(batch.Priority),
		Title:  batch.Title,
		Text:   batch.Summary,
		Fields: fields,
		Footer: "redscout",
	}

	return &slack.WebhookMessage{
		Text:        fmt.Sprintf("%s (%d items)", batch.Title, len(batch.Items)),
		Attachments: []slack.Attachment{attachment},
	}
}

// renderEmail builds the subject plus plain-text and HTML bodies.
func renderEmail(batch Batch) (subject, textBody, htmlBody string) {
	subject = fmt.Sprintf("[redscout] %s (%d items)", batch.Title, len(batch.Items))

	var text strings.Builder
	text.WriteString(batch.Title + "\n")
	if batch.Summary != "" {
		text.WriteString(batch.Summary + "\n")
	}
	text.WriteString("\n")
	for _, item := range batch.Items {
		text.WriteString("- " + item.Title + "\n")
		if item.Summary != "" {
			text.WriteString("  " + item.Summary + "\n")
		}
		if item.URL != "" {
			text.WriteString("  " + item.URL + "\n")
		}
	}

	var htmlBuf strings.Builder
	htmlBuf.WriteString("<h2>" + html.EscapeString(batch.Title) + "</h2>")
	if batch.Summary != "" {
		htmlBuf.WriteString("<p>" + html.EscapeString(batch.Summary) + "</p>")
	}
	htmlBuf.WriteString("<ul>")
	for _, item := range batch.Items {
		htmlBuf.WriteString("<li><strong>" + html.EscapeString(item.Title) + "</strong>")
		if item.Summary != "" {
			htmlBuf.WriteString("<br>" + html.EscapeString(item.Summary))
		}
		if item.URL != "" {
			htmlBuf.WriteString(fmt.Sprintf(`<br><a href="%s">View on Reddit</a>`, html.EscapeString(item.URL)))
		}
		htmlBuf.WriteString("</li>")
	}
	htmlBuf.WriteString("</ul>")

	return subject, text.String(), htmlBuf.String()
}
