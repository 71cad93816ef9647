package form

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/careerninja/forms-api/internal/mail"
)

// submittedAtLayout is the human-readable timestamp shown in notification
// mails, e.g. "March 7, 2026, 4:05 pm".
const submittedAtLayout = "January 2, 2006, 3:04 pm"

var bodyTmpl = template.Must(template.New("notification").Parse(`<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: {{.Accent}}; color: white; padding: 20px; text-align: center; }
        .content { background: #f9f9f9; padding: 20px; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: {{.Accent}}; }
        .footer { background: #2c3e50; color: white; padding: 15px; text-align: center; font-size: 12px; }
    </style>
</head>
<body>
    <div class='container'>
        <div class='header'>
            <h1>{{.Title}}</h1>{{if .Tagline}}
            <p>{{.Tagline}}</p>{{end}}
        </div>
        <div class='content'>{{range .Fields}}
            <div class='field'>
                <span class='label'>{{.Label}}:</span>{{if .Multiline}}<br>{{end}}
                {{.Value}}
            </div>{{end}}
            <div class='field'>
                <span class='label'>Submission Time:</span>
                {{.SubmittedAt}}
            </div>
        </div>
        <div class='footer'>
            <p>This email was sent from the CareerNinja {{.FooterName}} form.</p>
        </div>
    </div>
</body>
</html>
`))

type bodyField struct {
	Label     string
	Multiline bool
	Value     template.HTML
}

type bodyData struct {
	Title       string
	Tagline     string
	Accent      template.CSS
	FooterName  string
	SubmittedAt string
	Fields      []bodyField
}

// Render produces the notification message for a validated submission. This
// is the only place untrusted text meets markup: every field value is HTML
// escaped here, multiline values get their newlines turned into <br>, and
// empty optional values are replaced by the schema's fallback text. The
// output is deterministic for a given submission and timestamp.
func Render(s Submission, schema Schema, recipient string, submittedAt time.Time) (mail.Message, error) {
	data := bodyData{
		Title:       schema.Title,
		Tagline:     schema.Tagline,
		Accent:      template.CSS(schema.AccentColor),
		FooterName:  schema.FooterName,
		SubmittedAt: submittedAt.Format(submittedAtLayout),
		Fields:      make([]bodyField, 0, len(schema.Fields)),
	}
	for _, field := range schema.Fields {
		data.Fields = append(data.Fields, bodyField{
			Label:     field.Label,
			Multiline: field.Multiline && s[field.Name] != "",
			Value:     fieldHTML(field, s[field.Name]),
		})
	}

	var buf bytes.Buffer
	if err := bodyTmpl.Execute(&buf, data); err != nil {
		return mail.Message{}, fmt.Errorf("render %s notification: %w", schema.ID, err)
	}
	return mail.Message{
		To:      recipient,
		ReplyTo: s["email"],
		Subject: schema.Subject,
		HTML:    buf.String(),
	}, nil
}

func fieldHTML(field FieldSpec, value string) template.HTML {
	if value == "" {
		return template.HTML(template.HTMLEscapeString(field.Fallback))
	}
	escaped := template.HTMLEscapeString(value)
	if field.Kind == KindEmail {
		return template.HTML(fmt.Sprintf("<a href='mailto:%s'>%s</a>", escaped, escaped))
	}
	if field.Multiline {
		escaped = strings.ReplaceAll(escaped, "\n", "<br>\n")
	}
	return template.HTML(escaped)
}
